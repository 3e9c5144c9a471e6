// Package google converts Google Cloud resources to their AzureRM
// equivalents.
package google

import (
	"fmt"

	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/marcuscabrera/terracognita-fork/convert"
)

// Converters maps the supported Google Cloud resource types to their AzureRM
// converters.
var Converters = convert.Registry{
	"google_compute_instance":   convert.Func(convertInstance),
	"google_compute_network":    convert.Func(convertNetwork),
	"google_compute_subnetwork": convert.Func(convertSubnetwork),
	"google_compute_firewall":   convert.Func(convertFirewall),
}

// ProviderBlock is the AzureRM provider configuration injected into every
// converted document. The features block is mandatory for azurerm even when
// empty.
var ProviderBlock = config.Body{
	"azurerm": map[string]interface{}{
		"features": map[string]interface{}{},
	},
}

const unsupportedHint = "The converter currently supports compute instances, networks and basic tags."

// subnetRules rewrites references to GCP subnetworks into references to the
// Azure subnets they become. GCP self links have no Azure counterpart; the
// subnet id attribute is the nearest equivalent.
var subnetRules = []convert.ReferenceRule{
	{SourceType: "google_compute_subnetwork", TargetType: "azurerm_subnet", SourceSuffix: "self_link", TargetSuffix: "id"},
}

// networkRules rewrites references to GCP networks into references to Azure
// virtual networks. Azure subnets name their network directly, so a trailing
// .name attribute is dropped.
var networkRules = []convert.ReferenceRule{
	{SourceType: "google_compute_network", TargetType: "azurerm_virtual_network", SourceSuffix: ".name", TargetSuffix: ""},
}

// NewPass returns a conversion pass configured for the Google Cloud to
// AzureRM mapping.
func NewPass() *convert.Pass {
	return &convert.Pass{
		Registry:        Converters,
		ProviderBlock:   ProviderBlock,
		UnsupportedHint: unsupportedHint,
	}
}

// ToAzure converts the Terraform configuration at inputPath and writes the
// AzureRM document to outputPath.
func ToAzure(inputPath, outputPath string) (*convert.Report, error) {
	return NewPass().Run(inputPath, outputPath)
}

// convertInstance fans a compute instance out into a network interface and a
// Linux virtual machine: Azure attaches networking through a standalone NIC
// resource where GCP inlines it. The VM references the synthesized NIC by
// name through the azurerm interpolation syntax, and location, resource
// group and credentials come from externally supplied variables.
func convertInstance(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "machine_type"); err != nil {
		return nil, err
	}
	sourceImage, ok := convert.LookupString(body, "boot_disk.initialize_params.image")
	if !ok {
		return nil, &convert.ValidationError{
			Resource: name,
			Missing:  []string{"boot_disk.initialize_params.image"},
		}
	}

	nicName := name + "_nic"
	ipConfig := config.Body{
		"name":                          "primary",
		"subnet_id":                     "${var.azure_subnet_id}",
		"private_ip_address_allocation": "Dynamic",
	}
	if convert.Truthy(body["can_ip_forward"]) {
		ipConfig["public_ip_address_id"] = "${var.azure_public_ip_id}"
	}
	if nic := convert.BlockBody(body["network_interface"]); nic != nil {
		if subnet, ok := convert.FirstString(nic, "subnetwork", "subnetwork_self_link"); ok {
			ipConfig["subnet_id"] = convert.RewriteReference(subnet, subnetRules)
		}
		if convert.Truthy(nic["access_config"]) {
			ipConfig["public_ip_address_id"] = "${var.azure_public_ip_id}"
		}
	}
	nicBody := config.Body{
		"name":                nicName,
		"location":            "${var.azure_location}",
		"resource_group_name": "${var.azure_resource_group}",
		"ip_configuration":    []interface{}{ipConfig},
	}

	vmBody := config.Body{
		"name":                            name,
		"location":                        "${var.azure_location}",
		"resource_group_name":             "${var.azure_resource_group}",
		"size":                            body["machine_type"],
		"admin_username":                  "${var.azure_admin_username}",
		"disable_password_authentication": true,
		"network_interface_ids":           []interface{}{fmt.Sprintf("${azurerm_network_interface.%s.id}", nicName)},
		"os_disk": config.Body{
			"name":                 name + "-os-disk",
			"caching":              "ReadWrite",
			"storage_account_type": "Standard_LRS",
		},
		"source_image_id": sourceImage,
	}
	if tags, ok := body["tags"]; ok && convert.Truthy(tags) {
		vmBody["tags"] = tags
	}

	return []config.Resource{
		{Type: "azurerm_network_interface", Name: nicName, Body: nicBody},
		{Type: "azurerm_linux_virtual_machine", Name: name, Body: vmBody},
	}, nil
}

func convertNetwork(name string, body config.Body) ([]config.Resource, error) {
	auto, ok := body["auto_create_subnetworks"]
	if !ok || convert.Truthy(auto) {
		// GCP auto-mode networks pick their own regional subnets; there is
		// nothing to translate them into.
		return nil, &convert.ManualMigrationError{
			Reason: "VPC networks with auto_create_subnetworks cannot be mapped to Azure VNets automatically.",
		}
	}
	prefixes, ok := convert.Lookup(body, "routing_config.ipv4_cidr_blocks")
	if !ok || !convert.Truthy(prefixes) {
		prefixes = []interface{}{"${var.azure_vnet_cidr}"}
	}
	mapped := config.Body{
		"name":                nameOrDefault(body, name),
		"location":            "${var.azure_location}",
		"resource_group_name": "${var.azure_resource_group}",
		"address_space":       prefixes,
	}
	return []config.Resource{{Type: "azurerm_virtual_network", Name: name, Body: mapped}}, nil
}

func convertSubnetwork(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "ip_cidr_range"); err != nil {
		return nil, err
	}
	networkRef := "${var.azure_vnet_name}"
	if ref, ok := body["network"].(string); ok && ref != "" {
		networkRef = convert.RewriteReference(ref, networkRules)
	}
	mapped := config.Body{
		"name":                 nameOrDefault(body, name),
		"resource_group_name":  "${var.azure_resource_group}",
		"virtual_network_name": networkRef,
		"address_prefixes":     []interface{}{body["ip_cidr_range"]},
	}
	if region, ok := body["region"].(string); ok && region != "" {
		mapped["delegation"] = []interface{}{config.Body{
			"name": name + "-delegation",
			"service_delegation": config.Body{
				"name": "Microsoft.Network/" + region,
			},
		}}
	}
	return []config.Resource{{Type: "azurerm_subnet", Name: name, Body: mapped}}, nil
}

func convertFirewall(name string, body config.Body) ([]config.Resource, error) {
	return nil, &convert.ManualMigrationError{
		Reason: "GCP firewall rules must be recreated manually using azurerm_network_security_group_rule.",
	}
}

// nameOrDefault prefers the resource's own name attribute over its Terraform
// label.
func nameOrDefault(body config.Body, fallback string) interface{} {
	if v, ok := body["name"]; ok {
		return v
	}
	return fallback
}
