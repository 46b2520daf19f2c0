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

// Command vec3info prints the CPU features, the register dispatch level and
// the vector backend selected for this build, then runs a short self-check
// of every backend.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/go-highway/vector3/hwy"
	"github.com/go-highway/vector3/hwy/contrib/vec3"
)

func main() {
	verbose := flag.Bool("v", false, "log chained insertion diagnostics")
	check := flag.Bool("check", true, "run the backend self-check")
	flag.Parse()

	if *verbose {
		vec3.SetLogger(vec3.NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		vec3.SetLogger(vec3.NoopLogger())
	}

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Printf("Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Printf("Highway HasAVX: %v\n", hwy.HasAVX())
	fmt.Printf("Highway HasSVE: %v\n", hwy.HasSVE())
	fmt.Printf("HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	info := vek32.Info()
	fmt.Println("=== github.com/viterin/vek ===")
	fmt.Printf("  Acceleration: %v\n", info.Acceleration)
	fmt.Printf("  CPUFeatures:  %s\n", strings.Join(info.CPUFeatures, ", "))
	fmt.Println()

	sel := vec3.Selected()
	fmt.Println("=== vec3 ===")
	fmt.Printf("  Selected backend: %s\n", sel)
	fmt.Printf("  Element bits:     %d\n", sel.ElementBits)
	fmt.Printf("  Register bits:    %d\n", sel.RegisterBits)
	fmt.Printf("  Padding lanes:    %d\n", sel.PaddingLanes)
	fmt.Printf("  Narrow register:  %s\n", hwy.F32x4{}.Tag().Name())
	fmt.Printf("  Wide register:    %s\n", hwy.F64x4{}.Tag().Name())
	fmt.Printf("  RLength error:    %g\n", sel.RLengthTolerance)

	if !*check {
		return
	}
	fmt.Println()
	failed := 0
	for _, r := range selfCheck() {
		status := "ok"
		if r.err != nil {
			status = "FAIL: " + r.err.Error()
			failed++
		}
		fmt.Printf("  %-9s %s\n", r.backend, status)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v (DPPS)\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
