package sweep

import (
	"strconv"
	"strings"
)

// Section headers of a rendered parameter block.
const (
	ConstantHeader = "# Constant Parameters"
	TestHeader     = "# Test Parameters"
)

// Assemble renders constant and test parameters into a parameter block.
//
// The block lists the constant parameters first, then the test parameters,
// each as "name: value" lines in the given order. Names are written verbatim.
func Assemble(constants, variables []Param) string {
	var sb strings.Builder
	sb.Grow(len(ConstantHeader) + len(TestHeader) + 2 + 16*(len(constants)+len(variables)))

	sb.WriteString(ConstantHeader)
	sb.WriteByte('\n')
	writeParams(&sb, constants)

	sb.WriteString(TestHeader)
	sb.WriteByte('\n')
	writeParams(&sb, variables)

	return sb.String()
}

func writeParams(sb *strings.Builder, params []Param) {
	for _, p := range params {
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatBool(p.Value))
		sb.WriteByte('\n')
	}
}
