package main

import (
	"testing"
)

func TestTypesCommand(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runTypes()
	})
	if err != nil {
		t.Fatalf("runTypes() error = %v", err)
	}

	assertContains(t, output, []string{
		"REG_NONE",
		"REG_SZ",
		"REG_EXPAND_SZ",
		"REG_BINARY",
		"REG_DWORD",
		"REG_DWORD_BIG_ENDIAN",
		"REG_LINK",
		"REG_MULTI_SZ",
		"REG_RESOURCE_LIST",
		"REG_FULL_RESOURCE_DESCRIPTOR",
		"REG_RESOURCE_REQUIREMENTS_LIST",
		"REG_QWORD",
	})
}

func TestTypesCommandJSON(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = true
	defer func() { jsonOut = false }()

	output, err := captureOutput(t, func() error {
		return runTypes()
	})
	if err != nil {
		t.Fatalf("runTypes() error = %v", err)
	}

	assertJSON(t, output)
	assertContains(t, output, []string{"\"tag\": 11", "REG_QWORD"})
}
