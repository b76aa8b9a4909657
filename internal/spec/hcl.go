package spec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// hclDocument is the top-level shape of an HCL sweep document.
type hclDocument struct {
	Iterations  int             `hcl:"iterations"`
	BucketCount int             `hcl:"bucket_count"`
	TimeLimit   int             `hcl:"time_limit"`
	Parameters  []*hclParameter `hcl:"parameter,block"`
}

// hclParameter is a `parameter "name" { constant = <bool> }` block. A block
// without a constant attribute declares a test parameter.
type hclParameter struct {
	Name     string         `hcl:"name,label"`
	Constant hcl.Expression `hcl:"constant,optional"`
}

func parseHCL(data []byte, path string) (*Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL spec %s: %w", path, diags)
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL spec %s: %w", path, diags)
	}

	spec := &Spec{
		Iterations:  doc.Iterations,
		BucketCount: doc.BucketCount,
		TimeLimit:   doc.TimeLimit,
		Parameters:  make([]Parameter, 0, len(doc.Parameters)),
	}
	for _, p := range doc.Parameters {
		param, err := translateHCLParameter(p)
		if err != nil {
			return nil, err
		}
		spec.Parameters = append(spec.Parameters, param)
	}
	return spec, nil
}

func translateHCLParameter(p *hclParameter) (Parameter, error) {
	param := Parameter{Name: p.Name, Kind: KindVariable}
	if p.Constant == nil {
		return param, nil
	}

	val, diags := p.Constant.Value(nil)
	if diags.HasErrors() {
		return Parameter{}, fmt.Errorf("parameter %q: %w", p.Name, diags)
	}
	if val.IsNull() {
		return param, nil
	}

	val, err := convert.Convert(val, cty.Bool)
	if err != nil {
		rng := p.Constant.Range()
		return Parameter{}, fmt.Errorf("%s: parameter %q: constant must be a bool: %w", rng.String(), p.Name, err)
	}
	if !val.IsKnown() || val.IsNull() {
		return Parameter{}, fmt.Errorf("parameter %q: constant must be a known bool", p.Name)
	}

	param.Kind = KindConstant
	param.Value = val.True()
	return param, nil
}
