// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vecgen generates the named swizzle surface of package vec.
//
// Usage:
//
//	vecgen -output swizzle_gen.go
//
// Or via go:generate, from the vec package directory:
//
//	//go:generate go run ../cmd/vecgen -output swizzle_gen.go
//
// For every vector length N in {2, 3, 4} the generator emits read swizzles for
// every word of one to four letters over the first N axis letters, With and
// Set forms for the repetition-free words, and pointer-returning Mut
// accessors for contiguous lane ranges and disjoint groups of them.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "swizzle_gen.go", "Output file")
	packageOut = flag.String("pkg", "vec", "Output package name")
)

func main() {
	flag.Parse()

	gen := &Generator{Package: *packageOut}
	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s\n", *outputFile)
}
