package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/value"
)

func init() {
	rootCmd.AddCommand(newTypesCmd())
}

var typeDescriptions = []struct {
	vt   value.ValueType
	desc string
}{
	{value.TypeNone, "No payload"},
	{value.TypeString, "NUL-terminated UTF-16 string"},
	{value.TypeExpandString, "String with environment references"},
	{value.TypeBinary, "Raw bytes"},
	{value.TypeU32, "32-bit integer, little-endian"},
	{value.TypeU32BE, "32-bit integer, big-endian"},
	{value.TypeLink, "Symbolic link (payload not interpreted)"},
	{value.TypeMultiString, "String list, double-NUL terminated"},
	{value.TypeResourceList, "Resource list (payload not interpreted)"},
	{value.TypeFullResourceDescriptor, "Resource descriptor (payload not interpreted)"},
	{value.TypeResourceRequirementsList, "Resource requirements (payload not interpreted)"},
	{value.TypeU64, "64-bit integer, little-endian"},
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registry value types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes()
		},
	}
}

type typeInfo struct {
	Tag         uint32 `json:"tag"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func runTypes() error {
	if jsonOut {
		infos := make([]typeInfo, 0, len(typeDescriptions))
		for _, td := range typeDescriptions {
			infos = append(infos, typeInfo{
				Tag:         uint32(td.vt),
				Name:        td.vt.String(),
				Description: td.desc,
			})
		}
		return printJSON(infos)
	}
	for _, td := range typeDescriptions {
		printInfo("%2d  %-30s %s\n", uint32(td.vt), td.vt.String(), td.desc)
	}
	return nil
}
