package classifier

// Report is the full classification of one address.
type Report struct {
	Address    string        `json:"address"`
	Types      []AddressType `json:"-"`
	TypeNames  []string      `json:"types"`
	Categories Category      `json:"-"`
	Names      []string      `json:"categories"`
	Network    string        `json:"network,omitempty"`
	Known      bool          `json:"known"`

	// OutsideAlphabet lists runes outside the alphabet of the matched
	// encoding. It is a hint only and never changes the classification.
	OutsideAlphabet string `json:"outside_alphabet,omitempty"`
}

// Describe classifies address against every rule.
func (c *Classifier) Describe(address string) Report {
	r := Report{
		Address:    address,
		Types:      c.Types(address),
		Categories: c.Categories(address),
	}
	r.Known = r.Categories != 0
	r.Names = r.Categories.Names()

	for _, typ := range r.Types {
		r.TypeNames = append(r.TypeNames, typ.String())
	}

	if net, ok := c.Network(address); ok {
		r.Network = net.String()
	}

	if len(r.Types) > 0 {
		var invalid []rune
		if r.Types[0].IsBech32() {
			invalid = InvalidBech32Chars(address)
		} else {
			invalid = InvalidBase58Chars(address)
		}
		r.OutsideAlphabet = string(invalid)
	}

	return r
}

// Describe classifies address with the default table.
func Describe(address string) Report { return Default().Describe(address) }
