package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tazhate/familytools/internal/domain"
)

func TestPhoneService_Normalize(t *testing.T) {
	t.Parallel()

	svc := NewPhoneService()

	cases := []struct {
		in, want string
	}{
		{"+380 44 123 4567", "+380441234567"},
		{"(095) 234-5678\n", "+380952345678"},
		{"067\t123 4567", "+380671234567"},
		{"380501234567", "+380501234567"},
		{"    +38(050)123-32-34", "+380501233234"},
		{"     0503451234", "+380503451234"},
		{"(050)8889900", "+380508889900"},
		{"38050-111-22-22", "+380501112222"},
		{"38050 111 22 11   ", "+380501112211"},
		{"+380 44 +123 4567", "+380441234567"},
		{"+380 44 123 4567num", "+380441234567"},
		// only a leading "+" survives, so this one gets no special treatment
		{"(+380) 44 123 4567", "+380441234567"},
		// digit count is not validated
		{"12", "+38012"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, svc.Normalize(tc.in), "input %q", tc.in)
	}
}

func TestPhoneService_NormalizeAny(t *testing.T) {
	t.Parallel()

	svc := NewPhoneService()

	got, err := svc.NormalizeAny(380501234567)
	require.ErrorIs(t, err, domain.ErrType)
	require.Empty(t, got)

	got, err = svc.NormalizeAny("0501234567")
	require.NoError(t, err)
	require.Equal(t, "+380501234567", got)
}

func TestPhoneService_NormalizeAll(t *testing.T) {
	t.Parallel()

	got := NewPhoneService().NormalizeAll([]string{"067\t123 4567", "380501234567"})
	require.Equal(t, []string{"+380671234567", "+380501234567"}, got)
}
