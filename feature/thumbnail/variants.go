package thumbnail

// Variant is one fixed derivative size.
type Variant struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name"`
}

// ProbeVariant is the derivative whose presence stands in for the whole set.
const ProbeVariant = "thumb-64"

// Variants are the derivative sizes produced for every original.
var Variants = []Variant{
	{Width: 64, Height: 64, Name: "thumb-64"},
	{Width: 200, Height: 150, Name: "thumb-200"},
	{Width: 300, Height: 300, Name: "thumb-300"},
	{Width: 400, Height: 300, Name: "thumb-400"},
}

// VariantKeys returns the derivative key of every variant for originalKey.
func VariantKeys(originalKey string) []string {
	keys := make([]string, len(Variants))
	for i, v := range Variants {
		keys[i] = DerivativeKey(originalKey, v.Name)
	}
	return keys
}
