package models

import (
	"encoding/json"
	"fmt"
)

// IceType classifies a sea-ice observation into one of the four campaign
// categories. The numeric order runs from thinnest to thickest and is the
// tie-break order for modal ice type: when two categories are equally
// frequent in a station's neighborhood, the thicker one wins.
type IceType int

const (
	IceOpenWater IceType = iota
	IceThin
	IceFirstYear
	IceMultiYear
)

// iceTypeCodes are the short codes used in the database and API payloads.
var iceTypeCodes = map[IceType]string{
	IceOpenWater: "OW",
	IceThin:      "TN",
	IceFirstYear: "FY",
	IceMultiYear: "MY",
}

var iceTypeLabels = map[IceType]string{
	IceOpenWater: "open water",
	IceThin:      "thin ice",
	IceFirstYear: "first-year ice",
	IceMultiYear: "multi-year ice",
}

// IceTypes returns all categories in thinnest-to-thickest order.
func IceTypes() []IceType {
	return []IceType{IceOpenWater, IceThin, IceFirstYear, IceMultiYear}
}

// Code returns the short storage code (OW, TN, FY, MY).
func (t IceType) Code() string {
	if code, ok := iceTypeCodes[t]; ok {
		return code
	}
	return fmt.Sprintf("IceType(%d)", int(t))
}

// Label returns the human-readable category name.
func (t IceType) Label() string {
	if label, ok := iceTypeLabels[t]; ok {
		return label
	}
	return t.Code()
}

func (t IceType) String() string {
	return t.Code()
}

// ParseIceType converts a storage code back into an IceType.
func ParseIceType(code string) (IceType, error) {
	for t, c := range iceTypeCodes {
		if c == code {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ice type code: %q", code)
}

// MarshalJSON encodes the ice type as its short code.
func (t IceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Code())
}

// UnmarshalJSON decodes an ice type from its short code.
func (t *IceType) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParseIceType(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
