package entity

import "testing"

func TestCompatibleWith3D(t *testing.T) {
	cases := []struct {
		name    string
		headers []string
		want    bool
	}{
		{
			name:    "exact names",
			headers: []string{"x", "y", "z", "componentId", "MaterialId", "True_Temp", "Pred_Temp", "Abs_Error"},
			want:    true,
		},
		{
			name:    "case insensitive",
			headers: []string{"X", "Y", "Z", "componentid", "materialid", "true_temp", "pred_temp", "abs_error"},
			want:    true,
		},
		{
			name:    "extra columns and shuffled order",
			headers: []string{"Abs_Error", "notes", "Pred_Temp", "True_Temp", "MaterialId", "componentId", "z", "y", "x", "id"},
			want:    true,
		},
		{
			name:    "one missing",
			headers: []string{"x", "y", "z", "componentId", "MaterialId", "True_Temp", "Pred_Temp"},
			want:    false,
		},
		{
			name:    "empty headers",
			headers: nil,
			want:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := Table{Headers: tc.headers}
			if got := table.CompatibleWith3D(); got != tc.want {
				t.Fatalf("CompatibleWith3D() = %v, want %v", got, tc.want)
			}
		})
	}
}
