package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tazhate/familytools/internal/domain"
)

func TestTicketService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("draws sorted unique numbers in range", func(t *testing.T) {
		r := require.New(t)
		svc := NewTicketService()

		for range 100 {
			ticket, err := svc.Generate(1, 49, 6)
			r.NoError(err)
			r.Len(ticket, 6)
			for i, n := range ticket {
				r.GreaterOrEqual(n, 1)
				r.Less(n, 49)
				if i > 0 {
					r.Greater(n, ticket[i-1])
				}
			}
		}
	})

	t.Run("takes the whole population", func(t *testing.T) {
		svc := NewTicketService()

		ticket, err := svc.Generate(5, 10, 5)
		require.NoError(t, err)
		require.Equal(t, domain.Ticket{5, 6, 7, 8, 9}, ticket)
	})

	t.Run("same seed gives same ticket", func(t *testing.T) {
		a, err := NewTicketService(WithSeed(42)).Generate(1, 1000, 20)
		require.NoError(t, err)
		b, err := NewTicketService(WithSeed(42)).Generate(1, 1000, 20)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		svc := NewTicketService()

		cases := []struct {
			name                   string
			lowest, highest, count int
			msg                    string
		}{
			{"quantity above max", 1, 5, 10, "quantity must be in the range 1-5"},
			{"min below 1", 0, 49, 6, "min must be at least 1"},
			{"max above 1000", 1, 1001, 6, "max must not exceed 1000"},
			{"min above max", 50, 10, 5, "quantity must be in the range 50-10"},
			{"zero quantity", 1, 10, 0, "quantity must be in the range 1-10"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ticket, err := svc.Generate(tc.lowest, tc.highest, tc.count)
				require.ErrorIs(t, err, domain.ErrRange)
				require.ErrorContains(t, err, tc.msg)
				require.Empty(t, ticket)
			})
		}
	})

	t.Run("fails when population is too small", func(t *testing.T) {
		svc := NewTicketService()

		// passes the literal min <= quantity <= max check, but [1, 5) has 4 numbers
		ticket, err := svc.Generate(1, 5, 5)
		require.ErrorIs(t, err, domain.ErrRange)
		require.ErrorContains(t, err, "larger than population")
		require.Nil(t, ticket)
	})
}

func TestParseTicketArgs(t *testing.T) {
	t.Parallel()

	req, err := ParseTicketArgs("1", "49", "6")
	require.NoError(t, err)
	require.Equal(t, TicketRequest{Min: 1, Max: 49, Quantity: 6}, req)

	for _, args := range [][3]string{
		{"1.0", "10", "0"},
		{"1", "ten", "3"},
		{"1", "10", ""},
	} {
		_, err := ParseTicketArgs(args[0], args[1], args[2])
		require.ErrorIs(t, err, domain.ErrType, args)
	}
}

func TestTicket_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[3 14 15]", domain.Ticket{3, 14, 15}.String())
	require.Equal(t, "[]", domain.Ticket{}.String())
}
