// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// gentuple writes the arity-specific tuple codecs of package thaum. Each
// arity differs only in how many typed components it carries, so they're
// generated from a single template:
//
//	go run ./internal/cmd/gentuple -max 8 -o tuple_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

const header = `// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Code generated by gentuple. DO NOT EDIT.

package thaum

import "io"
`

var tupleTemplate = template.Must(template.New("tuple").Funcs(template.FuncMap{
	"dec": func(i int) int { return i - 1 },
}).Parse(`
// NewTuple{{.N}} returns a Codec for R composed of {{.Words}} positional
// component{{if gt .N 1}}s{{end}}. Components are encoded and serialized in getter order, and
// build receives them in that same order.
func NewTuple{{.N}}[{{.TypeParams}}, R any](
	{{range .Idx}}c{{.}} Codec[T{{.}}],
	{{end}}build func({{.TypeParams}}) (R, error),
	{{range .Idx}}get{{.}} func(R) T{{.}},
	{{end}}) Codec[R] {
	return &tuple{{.N}}[{{.TypeParams}}, R]{
		{{range .Idx}}c{{.}}: c{{.}},
		{{end}}build: build,
		{{range .Idx}}get{{.}}: get{{.}},
		{{end}}}
}

type tuple{{.N}}[{{.TypeParams}}, R any] struct {
	{{range .Idx}}c{{.}} Codec[T{{.}}]
	{{end}}build func({{.TypeParams}}) (R, error)
	{{range .Idx}}get{{.}} func(R) T{{.}}
	{{end}}}

func (t *tuple{{.N}}[{{.TypeParams}}, R]) Encode(w io.Writer, value R) error {
	{{range .Idx}}if err := encodeElement(w, {{dec .}}, t.c{{.}}, t.get{{.}}(value)); err != nil {
		return err
	}
	{{end}}return nil
}

func (t *tuple{{.N}}[{{.TypeParams}}, R]) Decode(r io.Reader) (R, error) {
	var zero R
	{{range .Idx}}v{{.}}, err := decodeElement(r, {{dec .}}, t.c{{.}})
	if err != nil {
		return zero, err
	}
	{{end}}return construct(t.build({{.Values}}))
}

func (t *tuple{{.N}}[{{.TypeParams}}, R]) SerializeText(value R) (string, error) {
	var text tupleText
	{{range .Idx}}if err := appendElement(&text, t.c{{.}}, t.get{{.}}(value)); err != nil {
		return "", err
	}
	{{end}}return text.String()
}

func (t *tuple{{.N}}[{{.TypeParams}}, R]) DeserializeText(text string) (R, error) {
	var zero R
	elems, err := splitTuple(text, {{.N}})
	if err != nil {
		return zero, err
	}
	{{range .Idx}}v{{.}}, err := elementAt(t.c{{.}}, elems, {{dec .}})
	if err != nil {
		return zero, err
	}
	{{end}}return construct(t.build({{.Values}}))
}
`))

var words = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type arity struct {
	N          int
	Words      string
	Idx        []int
	TypeParams string
	Values     string
}

func newArity(n int) arity {
	a := arity{N: n, Words: words[n]}
	var types, values []string
	for i := 1; i <= n; i++ {
		a.Idx = append(a.Idx, i)
		types = append(types, fmt.Sprintf("T%d", i))
		values = append(values, fmt.Sprintf("v%d", i))
	}
	a.TypeParams = strings.Join(types, ", ")
	a.Values = strings.Join(values, ", ")
	return a
}

func main() {
	maxArity := flag.Int("max", 8, "largest tuple arity to generate")
	out := flag.String("o", "tuple_gen.go", "output file")
	flag.Parse()
	if *maxArity < 1 || *maxArity >= len(words) {
		fmt.Fprintf(os.Stderr, "gentuple: -max must be between 1 and %d\n", len(words)-1)
		os.Exit(1)
	}
	src, err := generate(*maxArity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentuple: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gentuple: %v\n", err)
		os.Exit(1)
	}
}

func generate(maxArity int) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(header)
	for n := 1; n <= maxArity; n++ {
		if err := tupleTemplate.Execute(buf, newArity(n)); err != nil {
			return nil, fmt.Errorf("arity %d: %w", n, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}
