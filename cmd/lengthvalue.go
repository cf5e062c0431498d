package cmd

import (
	"github.com/philipparndt/sghelper/pkg/analysis"
	"github.com/philipparndt/sghelper/pkg/length"
	"github.com/spf13/pflag"
)

// lengthValue adapts a length.Length to a command line flag
type lengthValue struct {
	target *length.Length
	text   string
}

var _ pflag.Value = (*lengthValue)(nil)

func newLengthValue(target *length.Length) *lengthValue {
	return &lengthValue{
		target: target,
		text:   analysis.FormatCentimeters(*target),
	}
}

func (v *lengthValue) Set(s string) error {
	l, err := length.Parse(s)
	if err != nil {
		return err
	}
	*v.target = l
	v.text = s
	return nil
}

func (v *lengthValue) String() string {
	return v.text
}

func (v *lengthValue) Type() string {
	return "length"
}
