package azurerm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/marcuscabrera/terracognita-fork/convert"
)

func TestConvertVirtualMachine(t *testing.T) {
	body := config.Body{
		"vm_size": "Standard_B2s",
		"storage_image_reference": map[string]interface{}{
			"id": "/subscriptions/s/images/custom",
		},
		"network_interface_ids": []interface{}{"${azurerm_network_interface.nic.id}"},
		"tags":                  map[string]interface{}{"env": "prod"},
		"storage_os_disk": map[string]interface{}{
			"caching": "ReadWrite",
		},
	}

	got, err := convertVirtualMachine("vm", body)
	if err != nil {
		t.Fatalf("convertVirtualMachine() error = %v", err)
	}
	want := []config.Resource{{
		Type: "aws_instance",
		Name: "vm",
		Body: config.Body{
			"instance_type":         "Standard_B2s",
			"ami":                   "/subscriptions/s/images/custom",
			"network_interface_ids": []interface{}{"${azurerm_network_interface.nic.id}"},
			"tags":                  map[string]interface{}{"env": "prod"},
			"root_block_device":     config.Body{"delete_on_termination": true},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("convertVirtualMachine() (-want +got)\n%s", diff)
	}
}

func TestConvertVirtualMachine_ImageCandidates(t *testing.T) {
	tests := []struct {
		name string
		body config.Body
		want string
	}{
		{
			"URNFallback",
			config.Body{
				"size": "Standard_B1s",
				"source_image_reference": map[string]interface{}{
					"urn": "Canonical:ubuntu:22_04-lts:latest",
				},
			},
			"Canonical:ubuntu:22_04-lts:latest",
		},
		{
			"PublisherFallback",
			config.Body{
				"vm_size": "Standard_B1s",
				"storage_image_reference": map[string]interface{}{
					"publisher": "Canonical",
				},
			},
			"Canonical",
		},
		{
			// HCL input wraps the reference block in a list.
			"BlockList",
			config.Body{
				"vm_size": "Standard_B1s",
				"storage_image_reference": []interface{}{
					map[string]interface{}{"id": "/img"},
				},
			},
			"/img",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertVirtualMachine("vm", tt.body)
			if err != nil {
				t.Fatalf("convertVirtualMachine() error = %v", err)
			}
			if ami := got[0].Body["ami"]; ami != tt.want {
				t.Errorf("ami = %v, want %q", ami, tt.want)
			}
		})
	}
}

func TestConvertVirtualMachine_Failures(t *testing.T) {
	t.Run("MissingSize", func(t *testing.T) {
		_, err := convertVirtualMachine("vm", config.Body{
			"storage_image_reference": map[string]interface{}{"id": "/img"},
		})
		var verr *convert.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %T, want *ValidationError", err)
		}
	})

	t.Run("MissingImage", func(t *testing.T) {
		_, err := convertVirtualMachine("vm", config.Body{"vm_size": "Standard_B1s"})
		var verr *convert.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %T, want *ValidationError", err)
		}
	})
}

func TestConvertVirtualNetwork(t *testing.T) {
	tests := []struct {
		name string
		body config.Body
		want interface{}
	}{
		{
			"PrefixList",
			config.Body{"address_space": []interface{}{"10.1.0.0/16", "10.2.0.0/16"}},
			"10.1.0.0/16",
		},
		{
			"NestedPrefixes",
			config.Body{"address_space": map[string]interface{}{
				"address_prefixes": []interface{}{"10.3.0.0/16"},
			}},
			"10.3.0.0/16",
		},
		{
			"SinglePrefixString",
			config.Body{"address_space": map[string]interface{}{
				"address_prefix": "10.4.0.0/16",
			}},
			"10.4.0.0/16",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertVirtualNetwork("net", tt.body)
			if err != nil {
				t.Fatalf("convertVirtualNetwork() error = %v", err)
			}
			if got[0].Type != "aws_vpc" {
				t.Errorf("type = %s", got[0].Type)
			}
			if cidr := got[0].Body["cidr_block"]; cidr != tt.want {
				t.Errorf("cidr_block = %v, want %v", cidr, tt.want)
			}
		})
	}

	t.Run("MissingAddressSpace", func(t *testing.T) {
		_, err := convertVirtualNetwork("net", config.Body{})
		var verr *convert.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %T, want *ValidationError", err)
		}
	})

	t.Run("EmptyAddressSpace", func(t *testing.T) {
		_, err := convertVirtualNetwork("net", config.Body{"address_space": []interface{}{}})
		if err == nil {
			t.Fatal("convertVirtualNetwork() with no CIDRs did not fail")
		}
	})
}

func TestConvertSubnet(t *testing.T) {
	got, err := convertSubnet("a", config.Body{
		"address_prefix":       "10.0.1.0/24",
		"virtual_network_name": "${azurerm_virtual_network.main.name}",
	})
	if err != nil {
		t.Fatalf("convertSubnet() error = %v", err)
	}
	want := []config.Resource{{
		Type: "aws_subnet",
		Name: "a",
		Body: config.Body{
			"cidr_block": "10.0.1.0/24",
			"vpc_id":     "${aws_vpc.main.id}",
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("convertSubnet() (-want +got)\n%s", diff)
	}
}

func TestConvertSubnet_PlainNetworkName(t *testing.T) {
	// References to resources the converter does not know pass through
	// unchanged: the rewrite is a fixed substitution list, not a resolver.
	got, err := convertSubnet("a", config.Body{
		"address_prefix":       "10.0.1.0/24",
		"virtual_network_name": "my-network",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Body["vpc_id"] != "my-network" {
		t.Errorf("vpc_id = %v", got[0].Body["vpc_id"])
	}
}

func TestConvertSubnet_MissingNetworkRef(t *testing.T) {
	_, err := convertSubnet("a", config.Body{"address_prefix": "10.0.1.0/24"})
	var merr *convert.ManualMigrationError
	if !errors.As(err, &merr) {
		t.Fatalf("error = %T, want *ManualMigrationError", err)
	}
}

func TestConvertNetworkSecurityGroup(t *testing.T) {
	got, err := convertNetworkSecurityGroup("nsg", config.Body{"name": "allow-web"})
	if err != nil {
		t.Fatalf("convertNetworkSecurityGroup() error = %v", err)
	}
	if got[0].Type != "aws_security_group" {
		t.Errorf("type = %s", got[0].Type)
	}

	_, err = convertNetworkSecurityGroup("nsg", config.Body{
		"name":          "allow-web",
		"security_rule": []interface{}{map[string]interface{}{"priority": int64(100)}},
	})
	var merr *convert.ManualMigrationError
	if !errors.As(err, &merr) {
		t.Fatalf("error = %T, want *ManualMigrationError", err)
	}
}
