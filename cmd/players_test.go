package cmd

import "testing"

func TestSortDesc(t *testing.T) {
	if desc, err := sortDesc("desc"); err != nil || !desc {
		t.Errorf("desc = %v, %v", desc, err)
	}
	if desc, err := sortDesc("asc"); err != nil || desc {
		t.Errorf("asc = %v, %v", desc, err)
	}
	if _, err := sortDesc("down"); err == nil {
		t.Error("expected error for an unknown direction")
	}
}

func TestPlayersDirDefault(t *testing.T) {
	f := playersCmd.Flags().Lookup("dir")
	if f == nil || f.DefValue != "desc" {
		t.Fatalf("--dir flag = %+v, want default desc", f)
	}
	if playersCmd.Flags().Lookup("desc") != nil {
		t.Error("--desc should not be defined")
	}
}
