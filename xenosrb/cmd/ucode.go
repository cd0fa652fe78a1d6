// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/term"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/xenosrb/cmd/util"
)

// Ucode implements subcommands.Command for the "ucode" command.
type Ucode struct {
	dump  string
	force bool
}

// Name implements subcommands.Command.Name.
func (*Ucode) Name() string {
	return "ucode"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Ucode) Synopsis() string {
	return "describe the embedded command processor microcode"
}

// Usage implements subcommands.Command.Usage.
func (*Ucode) Usage() string {
	return `ucode [-dump=pfp|me [-force]] - print microcode sizes and digests, or write one image to stdout
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (u *Ucode) SetFlags(f *flag.FlagSet) {
	f.StringVar(&u.dump, "dump", "", "write the named image (pfp or me) to stdout as big-endian words")
	f.BoolVar(&u.force, "force", false, "dump even when stdout is a terminal")
}

// Execute implements subcommands.Command.Execute.
func (u *Ucode) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	images := []struct {
		name  string
		words []uint32
	}{
		{"pfp", abi.PFPMicrocode[:]},
		{"me", abi.MEMicrocode[:]},
	}
	if u.dump != "" {
		if !u.force && term.IsTerminal(int(os.Stdout.Fd())) {
			return util.Errorf("refusing to write binary microcode to a terminal, redirect stdout or pass -force")
		}
		for _, img := range images {
			if img.name == u.dump {
				if _, err := os.Stdout.Write(imageBytes(img.words)); err != nil {
					return util.Errorf("writing %s image: %v", img.name, err)
				}
				return subcommands.ExitSuccess
			}
		}
		f.Usage()
		return subcommands.ExitUsageError
	}
	for _, img := range images {
		printImage(os.Stdout, img.name, img.words)
	}
	return subcommands.ExitSuccess
}

// imageBytes returns words as they would be stored big-endian.
func imageBytes(words []uint32) []byte {
	b := make([]byte, 0, 4*len(words))
	for _, w := range words {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	return b
}

// imageDigest returns the BLAKE2b-256 digest of the big-endian image.
func imageDigest(words []uint32) string {
	sum := blake2b.Sum256(imageBytes(words))
	return hex.EncodeToString(sum[:])
}

func printImage(w io.Writer, name string, words []uint32) {
	fmt.Fprintf(w, "%-4s %5d words  blake2b-256 %s\n", name, len(words), imageDigest(words))
}
