package address

import "github.com/spf13/pflag"

// Value adapts an Address to a command line flag.
type Value struct {
	Address Address
	IsSet   bool
}

var _ pflag.Value = (*Value)(nil)

// Set parses the flag argument.
func (v *Value) Set(s string) error {
	a, err := Parse(s)
	if err != nil {
		return err
	}
	v.Address = a
	v.IsSet = true
	return nil
}

func (v *Value) String() string {
	if v == nil || !v.IsSet {
		return ""
	}
	return v.Address.Hex()
}

// Type names the flag type in usage output.
func (v *Value) Type() string {
	return "address"
}

// Ptr returns the address, or nil when the flag was never set.
func (v *Value) Ptr() *Address {
	if v == nil || !v.IsSet {
		return nil
	}
	a := v.Address
	return &a
}
