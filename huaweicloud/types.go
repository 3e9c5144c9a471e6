// Package huaweicloud enumerates the Huawei Cloud resource types the
// converter can emit.
package huaweicloud

import "fmt"

// ResourceType identifies a Huawei Cloud resource kind. The set is closed:
// the AWS converter set only produces types listed here.
type ResourceType string

const (
	ComputeInstance    ResourceType = "huaweicloud_compute_instance"
	VPC                ResourceType = "huaweicloud_vpc"
	VPCSubnet          ResourceType = "huaweicloud_vpc_subnet"
	NetworkingSecgroup ResourceType = "huaweicloud_networking_secgroup"
	EIP                ResourceType = "huaweicloud_vpc_eip"
	EVSVolume          ResourceType = "huaweicloud_evs_volume"
	NatGateway         ResourceType = "huaweicloud_nat_gateway"
	OBSBucket          ResourceType = "huaweicloud_obs_bucket"
)

var resourceTypes = []ResourceType{
	ComputeInstance,
	VPC,
	VPCSubnet,
	NetworkingSecgroup,
	EIP,
	EVSVolume,
	NatGateway,
	OBSBucket,
}

func (t ResourceType) String() string { return string(t) }

// ResourceTypeStrings returns the supported resource types as strings.
func ResourceTypeStrings() []string {
	out := make([]string, len(resourceTypes))
	for i, t := range resourceTypes {
		out[i] = string(t)
	}
	return out
}

// ResourceTypeString returns the ResourceType named by in, or an error when
// in names no supported type.
func ResourceTypeString(in string) (ResourceType, error) {
	for _, t := range resourceTypes {
		if string(t) == in {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported resource type %q", in)
}
