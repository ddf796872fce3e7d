package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/value"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type> <hex>",
		Short: "Decode a raw value payload",
		Long: `The decode command interprets a raw value payload (hex bytes) according
to a registry value type and prints the decoded result.

Example:
  regctl decode sz 680069000000
  regctl decode dword fefe3412
  regctl decode 7 61000000620000000000 --json
  regctl decode REG_QWORD fefe3412fefe3412`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
}

// decodedValue is the JSON shape of a decode result.
type decodedValue struct {
	Type    string   `json:"type"`
	Tag     uint32   `json:"tag"`
	Text    *string  `json:"text,omitempty"`
	Entries []string `json:"entries,omitempty"`
	Number  *uint64  `json:"number,omitempty"`
	Hex     string   `json:"hex,omitempty"`
}

func runDecode(args []string) error {
	vt, err := parseType(args[0])
	if err != nil {
		return err
	}
	raw, err := decodeHex(args[1])
	if err != nil {
		return err
	}

	printVerbose("Decoding %d byte(s) as %s\n", len(raw), vt)

	d, err := value.Decode(uint32(vt), raw)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if jsonOut {
		return printJSON(describeData(d))
	}
	printInfo("Type:  %s\n", d.Type())
	printInfo("Value: %s\n", d)
	return nil
}

func describeData(d value.Data) decodedValue {
	out := decodedValue{Type: d.Type().String(), Tag: uint32(d.Type())}
	if s, ok := d.Text(); ok {
		out.Text = &s
	}
	if list, ok := d.Strings(); ok {
		out.Entries = list
	}
	if b, ok := d.Bytes(); ok {
		out.Hex = hex.EncodeToString(b)
	}
	if n, ok := d.Uint32(); ok {
		v := uint64(n)
		out.Number = &v
	}
	if n, ok := d.Uint64(); ok {
		out.Number = &n
	}
	return out
}

// decodeHex parses hex input, tolerating spaces and 0x prefixes.
func decodeHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", "\t", "", "0x", "", "0X", "").Replace(s)
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return raw, nil
}
