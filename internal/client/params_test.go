package client

import (
	"strings"
	"testing"
)

func TestProductListParams_OnlySetFieldsSerialize(t *testing.T) {
	cases := []struct {
		name   string
		params ProductListParams
		want   string
		absent []string
	}{
		{
			name:   "empty",
			params: ProductListParams{},
			want:   "",
			absent: []string{"page=", "limit=", "status=", "search=", "sort="},
		},
		{
			name:   "page only",
			params: ProductListParams{Page: 3},
			want:   "page=3",
			absent: []string{"limit=", "status=", "search=", "sort="},
		},
		{
			name:   "full",
			params: ProductListParams{Page: 1, Limit: 50, Status: "active", Search: "mug", Sort: "name"},
			want:   "limit=50&page=1&search=mug&sort=name&status=active",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.params.values().Encode()
			if got != tc.want {
				t.Errorf("Encode() = %q; want %q", got, tc.want)
			}
			for _, a := range tc.absent {
				if strings.Contains(got, a) {
					t.Errorf("Encode() = %q contains unset field %q", got, a)
				}
			}
		})
	}
}

func TestOrderListParams_ZeroAndNegativeOmitted(t *testing.T) {
	got := OrderListParams{Page: 0, Limit: -5, Status: ""}.values().Encode()
	if got != "" {
		t.Errorf("Encode() = %q; want empty", got)
	}
}
