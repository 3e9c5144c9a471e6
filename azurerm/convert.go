// Package azurerm converts Azure Resource Manager resources to their AWS
// equivalents.
package azurerm

import (
	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/marcuscabrera/terracognita-fork/convert"
)

// Converters maps the supported AzureRM resource types to their AWS
// converters. Both the classic and the Linux-specific virtual machine types
// share one converter; their fields overlap for everything the mapping
// reads.
var Converters = convert.Registry{
	"azurerm_virtual_machine":        convert.Func(convertVirtualMachine),
	"azurerm_linux_virtual_machine":  convert.Func(convertVirtualMachine),
	"azurerm_virtual_network":        convert.Func(convertVirtualNetwork),
	"azurerm_subnet":                 convert.Func(convertSubnet),
	"azurerm_network_security_group": convert.Func(convertNetworkSecurityGroup),
}

// ProviderBlock is the AWS provider configuration injected into every
// converted document.
var ProviderBlock = config.Body{
	"aws": map[string]interface{}{
		"region": "${var.aws_region}",
	},
}

const unsupportedHint = "Please update the azurerm converter set with the missing Azure resource mapping."

// vnetRules rewrites references to Azure virtual networks into references to
// the AWS VPCs they become; AWS identifies VPCs by id where Azure uses the
// network name.
var vnetRules = []convert.ReferenceRule{
	{SourceType: "azurerm_virtual_network", TargetType: "aws_vpc", SourceSuffix: ".name", TargetSuffix: ".id"},
}

// NewPass returns a conversion pass configured for the AzureRM to AWS
// mapping.
func NewPass() *convert.Pass {
	return &convert.Pass{
		Registry:        Converters,
		ProviderBlock:   ProviderBlock,
		UnsupportedHint: unsupportedHint,
	}
}

// ToAWS converts the Terraform configuration at inputPath and writes the AWS
// document to outputPath.
func ToAWS(inputPath, outputPath string) (*convert.Report, error) {
	return NewPass().Run(inputPath, outputPath)
}

func convertVirtualMachine(name string, body config.Body) ([]config.Resource, error) {
	size, ok := convert.First(body, "vm_size", "size")
	if !ok {
		return nil, &convert.ValidationError{Resource: name, Missing: []string{"vm_size/size"}}
	}
	mapped := config.Body{"instance_type": size}

	imageRef, _ := convert.First(body, "storage_image_reference", "source_image_reference")
	ami, ok := convert.First(convert.BlockBody(imageRef), "id", "urn", "publisher")
	if !ok {
		return nil, &convert.ValidationError{
			Resource: name,
			Missing:  []string{"storage_image_reference.id", "storage_image_reference.urn"},
		}
	}
	mapped["ami"] = ami

	if nics, ok := body["network_interface_ids"]; ok && convert.Truthy(nics) {
		mapped["network_interface_ids"] = nics
	}
	if tags, ok := body["tags"]; ok && convert.Truthy(tags) {
		mapped["tags"] = tags
	}

	osDisk, _ := convert.First(body, "storage_os_disk", "os_disk")
	if b := convert.BlockBody(osDisk); b != nil && b["caching"] == "ReadWrite" {
		mapped["root_block_device"] = config.Body{"delete_on_termination": true}
	}
	return []config.Resource{{Type: "aws_instance", Name: name, Body: mapped}}, nil
}

func convertVirtualNetwork(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "address_space"); err != nil {
		return nil, err
	}
	cidrs := body["address_space"]
	if spaces, ok := cidrs.(map[string]interface{}); ok {
		cidrs, _ = convert.First(spaces, "address_prefixes", "address_prefix")
	}
	var cidr interface{}
	switch t := cidrs.(type) {
	case []interface{}:
		if len(t) > 0 {
			cidr = t[0]
		}
	default:
		cidr = cidrs
	}
	if !convert.Truthy(cidr) {
		return nil, &convert.ManualMigrationError{
			Reason: "Virtual network must define at least one CIDR block.",
		}
	}
	mapped := config.Body{"cidr_block": cidr}
	if tags, ok := body["tags"]; ok && convert.Truthy(tags) {
		mapped["tags"] = tags
	}
	return []config.Resource{{Type: "aws_vpc", Name: name, Body: mapped}}, nil
}

func convertSubnet(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "address_prefix"); err != nil {
		return nil, err
	}
	mapped := config.Body{"cidr_block": body["address_prefix"]}

	vnetName, ok := body["virtual_network_name"].(string)
	if !ok {
		return nil, &convert.ManualMigrationError{
			Reason: "Subnets must reference virtual_network_name so it can be mapped to the target VPC.",
		}
	}
	mapped["vpc_id"] = convert.RewriteReference(vnetName, vnetRules)

	if tags, ok := body["tags"]; ok && convert.Truthy(tags) {
		mapped["tags"] = tags
	}
	return []config.Resource{{Type: "aws_subnet", Name: name, Body: mapped}}, nil
}

func convertNetworkSecurityGroup(name string, body config.Body) ([]config.Resource, error) {
	if rules, ok := body["security_rule"]; ok && convert.Truthy(rules) {
		return nil, &convert.ManualMigrationError{
			Reason: "Network security group rules cannot be translated automatically. Please recreate them using aws_security_group_rule.",
		}
	}
	mapped := config.Body{}
	convert.CopyFields(mapped, body, []convert.FieldPair{
		{Source: "name", Target: "name"},
		{Source: "tags", Target: "tags"},
	})
	return []config.Resource{{Type: "aws_security_group", Name: name, Body: mapped}}, nil
}
