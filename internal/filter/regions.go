package filter

import (
	"slices"
	"strings"

	"zctadb/pkg/serrors"
)

// Range is an inclusive range of zero-padded ZIP code strings.
type Range struct {
	Low  string
	High string
}

// Contains compares zip lexically against the bounds. ZIP codes are never
// converted to integers so leading zeros keep their meaning.
func (r Range) Contains(zip string) bool {
	return zip >= r.Low && zip <= r.High
}

// Region is a state or district together with the ZIP ranges assigned to it.
type Region struct {
	Code   string
	Name   string
	Ranges []Range
}

//nolint: gochecknoglobals
var regions = map[string]Region{
	"AK": {Name: "Alaska", Ranges: []Range{{"99501", "99950"}}},
	"AL": {Name: "Alabama", Ranges: []Range{{"35004", "36925"}}},
	"AR": {Name: "Arkansas", Ranges: []Range{{"71601", "72959"}, {"75502", "75502"}}},
	"AZ": {Name: "Arizona", Ranges: []Range{{"85001", "86556"}}},
	"CA": {Name: "California", Ranges: []Range{{"90001", "96162"}}},
	"CO": {Name: "Colorado", Ranges: []Range{{"80001", "81658"}}},
	"CT": {Name: "Connecticut", Ranges: []Range{{"06001", "06389"}, {"06401", "06928"}}},
	"DC": {Name: "District of Columbia", Ranges: []Range{{"20001", "20039"}, {"20042", "20599"}, {"20799", "20799"}}},
	"DE": {Name: "Delaware", Ranges: []Range{{"19701", "19980"}}},
	"FL": {Name: "Florida", Ranges: []Range{{"32004", "34997"}}},
	"GA": {Name: "Georgia", Ranges: []Range{{"30001", "31999"}, {"39901", "39901"}}},
	"HI": {Name: "Hawaii", Ranges: []Range{{"96701", "96898"}}},
	"IA": {Name: "Iowa", Ranges: []Range{{"50001", "52809"}, {"68119", "68120"}}},
	"ID": {Name: "Idaho", Ranges: []Range{{"83201", "83876"}}},
	"IL": {Name: "Illinois", Ranges: []Range{{"60001", "62999"}}},
	"IN": {Name: "Indiana", Ranges: []Range{{"46001", "47997"}}},
	"KS": {Name: "Kansas", Ranges: []Range{{"66002", "67954"}}},
	"KY": {Name: "Kentucky", Ranges: []Range{{"40003", "42788"}}},
	"LA": {Name: "Louisiana", Ranges: []Range{{"70001", "71232"}, {"71234", "71497"}}},
	"MA": {Name: "Massachusetts", Ranges: []Range{{"01001", "02791"}, {"05501", "05544"}}},
	"MD": {Name: "Maryland", Ranges: []Range{{"20331", "20331"}, {"20335", "20797"}, {"20812", "21930"}}},
	"ME": {Name: "Maine", Ranges: []Range{{"03901", "04992"}}},
	"MI": {Name: "Michigan", Ranges: []Range{{"48001", "49971"}}},
	"MN": {Name: "Minnesota", Ranges: []Range{{"55001", "56763"}}},
	"MO": {Name: "Missouri", Ranges: []Range{{"63001", "65899"}}},
	"MS": {Name: "Mississippi", Ranges: []Range{{"38601", "39776"}, {"71233", "71233"}}},
	"MT": {Name: "Montana", Ranges: []Range{{"59001", "59937"}}},
	"NC": {Name: "North Carolina", Ranges: []Range{{"27006", "28909"}}},
	"ND": {Name: "North Dakota", Ranges: []Range{{"58001", "58856"}}},
	"NE": {Name: "Nebraska", Ranges: []Range{{"68001", "68118"}, {"68122", "69367"}}},
	"NH": {Name: "New Hampshire", Ranges: []Range{{"03031", "03897"}}},
	"NJ": {Name: "New Jersey", Ranges: []Range{{"07001", "08989"}}},
	"NM": {Name: "New Mexico", Ranges: []Range{{"87001", "88441"}}},
	"NV": {Name: "Nevada", Ranges: []Range{{"88901", "89883"}}},
	"NY": {Name: "New York", Ranges: []Range{{"06390", "06390"}, {"10001", "14975"}}},
	"OH": {Name: "Ohio", Ranges: []Range{{"43001", "45999"}}},
	"OK": {Name: "Oklahoma", Ranges: []Range{{"73001", "73199"}, {"73401", "74966"}}},
	"OR": {Name: "Oregon", Ranges: []Range{{"97001", "97920"}}},
	"PA": {Name: "Pennsylvania", Ranges: []Range{{"15001", "19640"}}},
	"RI": {Name: "Rhode Island", Ranges: []Range{{"02801", "02940"}}},
	"SC": {Name: "South Carolina", Ranges: []Range{{"29001", "29948"}}},
	"SD": {Name: "South Dakota", Ranges: []Range{{"57001", "57799"}}},
	"TN": {Name: "Tennessee", Ranges: []Range{{"37010", "38589"}}},
	"TX": {Name: "Texas", Ranges: []Range{{"73301", "73301"}, {"75001", "75501"}, {"75503", "79999"}, {"88510", "88589"}}},
	"UT": {Name: "Utah", Ranges: []Range{{"84001", "84784"}}},
	"VA": {Name: "Virginia", Ranges: []Range{{"20040", "20041"}, {"20040", "20167"}, {"20042", "20042"}, {"22001", "24658"}}},
	"VT": {Name: "Vermont", Ranges: []Range{{"05001", "05495"}, {"05601", "05907"}}},
	"WA": {Name: "Washington", Ranges: []Range{{"98001", "99403"}}},
	"WI": {Name: "Wisconsin", Ranges: []Range{{"53001", "54990"}}},
	"WV": {Name: "West Virginia", Ranges: []Range{{"24701", "26886"}}},
	"WY": {Name: "Wyoming", Ranges: []Range{{"82001", "83128"}}},
}

// Lookup returns the region registered under code, ignoring case.
func Lookup(code string) (Region, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	r, ok := regions[code]
	if !ok {
		return Region{}, serrors.With(serrors.ErrInvalidRegion,
			"region %q is not a valid two-letter abbreviation (e.g. CA, TX)", code)
	}
	r.Code = code

	return r, nil
}

// Regions returns every known region ordered by code.
func Regions() []Region {
	res := make([]Region, 0, len(regions))
	for code, r := range regions {
		r.Code = code
		res = append(res, r)
	}
	slices.SortFunc(res, func(a, b Region) int {
		return strings.Compare(a.Code, b.Code)
	})

	return res
}
