/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"log"
	"os"

	"github.com/rstms/hexd/hexdump"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Version: hexdump.Version,
	Use:     "hexd [FILE]",
	Short:   "dump bytes as hex",
	Long: `
Write a hexdump of FILE to stdout: 16 bytes per line as lowercase hex in
groups of 4, a sanitized ASCII column, and the byte offset, followed by a
summary line giving the total length.  With no FILE, or when FILE is '-',
read standard input.
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		offset, err := hexdump.SizeParse(ViperGetString("offset"))
		cobra.CheckErr(err)
		length := int64(-1)
		if ViperGetString("length") != "" {
			length, err = hexdump.SizeParse(ViperGetString("length"))
			cobra.CheckErr(err)
		}
		data, err := hexdump.ReadInput(name, offset, length)
		cobra.CheckErr(err)
		if ViperGetBool("verbose") {
			source := name
			if source == "" || source == "-" {
				source = "stdin"
			}
			log.Printf("read %s from %s\n", hexdump.FormatSize(int64(len(data))), source)
		}
		err = hexdump.Fprint(os.Stdout, data)
		cobra.CheckErr(err)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionSwitch(rootCmd, "no-humanize", "n", "display sizes in bytes")
	OptionString(rootCmd, "offset", "s", "0", "skip bytes before dumping")
	OptionString(rootCmd, "length", "l", "", "dump at most this many bytes")
}
