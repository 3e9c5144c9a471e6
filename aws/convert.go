// Package aws converts AWS resources to their Huawei Cloud equivalents.
package aws

import (
	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/marcuscabrera/terracognita-fork/convert"
	"github.com/marcuscabrera/terracognita-fork/huaweicloud"
)

// Converters maps the supported AWS resource types to their Huawei Cloud
// converters.
var Converters = convert.Registry{
	"aws_instance":       convert.Func(convertInstance),
	"aws_vpc":            convert.Func(convertVPC),
	"aws_subnet":         convert.Func(convertSubnet),
	"aws_security_group": convert.Func(convertSecurityGroup),
}

// ProviderBlock is the Huawei Cloud provider configuration injected into
// every converted document. The region comes from an externally supplied
// variable so the output applies to any region.
var ProviderBlock = config.Body{
	"huaweicloud": map[string]interface{}{
		"region": "${var.huaweicloud_region}",
	},
}

const unsupportedHint = "No equivalent Huawei Cloud resource is available in the automated converter yet."

// NewPass returns a conversion pass configured for the AWS to Huawei Cloud
// mapping. The caller may set Fs and Logger before running it.
func NewPass() *convert.Pass {
	return &convert.Pass{
		Registry:        Converters,
		ProviderBlock:   ProviderBlock,
		UnsupportedHint: unsupportedHint,
	}
}

// ToHuaweiCloud converts the Terraform configuration at inputPath and writes
// the Huawei Cloud document to outputPath. Per-resource mapping failures are
// recorded in the report; an error is returned only for unreadable or
// unparseable input, or unwritable output.
func ToHuaweiCloud(inputPath, outputPath string) (*convert.Report, error) {
	return NewPass().Run(inputPath, outputPath)
}

var instanceFields = []convert.FieldPair{
	{Source: "subnet_id", Target: "subnet_id"},
	{Source: "associate_public_ip_address", Target: "assign_public_ip"},
	{Source: "key_name", Target: "key_pair"},
	{Source: "tags", Target: "tags"},
}

func convertInstance(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "ami", "instance_type"); err != nil {
		return nil, err
	}
	mapped := config.Body{
		"image_id":    body["ami"],
		"flavor_name": body["instance_type"],
	}
	convert.CopyFields(mapped, body, instanceFields)
	if v, ok := body["vpc_security_group_ids"]; ok {
		mapped["security_groups"] = v
	}
	return []config.Resource{{Type: huaweicloud.ComputeInstance.String(), Name: name, Body: mapped}}, nil
}

func convertVPC(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "cidr_block"); err != nil {
		return nil, err
	}
	mapped := config.Body{"cidr": body["cidr_block"]}
	convert.CopyFields(mapped, body, []convert.FieldPair{
		{Source: "tags", Target: "tags"},
		{Source: "enable_dns_hostnames", Target: "enable_dns_hostnames"},
	})
	return []config.Resource{{Type: huaweicloud.VPC.String(), Name: name, Body: mapped}}, nil
}

func convertSubnet(name string, body config.Body) ([]config.Resource, error) {
	if err := convert.RequireFields(name, body, "vpc_id", "cidr_block"); err != nil {
		return nil, err
	}
	mapped := config.Body{
		"vpc_id": body["vpc_id"],
		"cidr":   body["cidr_block"],
	}
	convert.CopyFields(mapped, body, []convert.FieldPair{
		{Source: "availability_zone", Target: "availability_zone"},
		{Source: "tags", Target: "tags"},
	})
	return []config.Resource{{Type: huaweicloud.VPCSubnet.String(), Name: name, Body: mapped}}, nil
}

func convertSecurityGroup(name string, body config.Body) ([]config.Resource, error) {
	if _, ok := body["ingress"]; ok {
		return nil, secgroupRulesError()
	}
	if _, ok := body["egress"]; ok {
		return nil, secgroupRulesError()
	}
	mapped := config.Body{}
	convert.CopyFields(mapped, body, []convert.FieldPair{
		{Source: "name", Target: "name"},
		{Source: "description", Target: "description"},
		{Source: "tags", Target: "tags"},
	})
	return []config.Resource{{Type: huaweicloud.NetworkingSecgroup.String(), Name: name, Body: mapped}}, nil
}

func secgroupRulesError() error {
	return &convert.ManualMigrationError{
		Reason: "Security group rules must be migrated manually because Huawei Cloud manages them through " +
			"separate huaweicloud_networking_secgroup_rule resources.",
	}
}
