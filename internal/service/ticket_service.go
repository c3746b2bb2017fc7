package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/tazhate/familytools/internal/domain"
)

const (
	TicketLowestNumber  = 1
	TicketHighestNumber = 1000
)

// TicketRequest holds the draw parameters. Quantity is bounded by Min and Max
// themselves, not by the size of [Min, Max).
type TicketRequest struct {
	Min      int `validate:"gte=1"`
	Max      int `validate:"lte=1000"`
	Quantity int `validate:"gtefield=Min,ltefield=Max"`
}

type TicketService struct {
	rng      *rand.Rand
	validate *validator.Validate
}

type TicketOption func(*TicketService)

// WithSeed makes draws reproducible.
func WithSeed(seed uint64) TicketOption {
	return func(s *TicketService) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source used for draws.
func WithRand(r *rand.Rand) TicketOption {
	return func(s *TicketService) {
		s.rng = r
	}
}

func NewTicketService(opts ...TicketOption) *TicketService {
	s := &TicketService{
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate draws quantity distinct numbers from [lowest, highest) and returns
// them sorted ascending. On any failure the ticket is nil.
func (s *TicketService) Generate(lowest, highest, quantity int) (domain.Ticket, error) {
	req := TicketRequest{Min: lowest, Max: highest, Quantity: quantity}
	if err := s.check(req); err != nil {
		return nil, err
	}

	numbers, err := sample(s.rng, lowest, highest, quantity)
	if err != nil {
		return nil, domain.NewError("generate ticket", domain.ErrRange, err)
	}
	return numbers, nil
}

func (s *TicketService) check(req TicketRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewError("generate ticket", domain.ErrRange, err)
	}

	// Bounds are reported before quantity.
	for _, fe := range fieldErrs {
		if fe.Field() == "Min" || fe.Field() == "Max" {
			return domain.NewError("generate ticket", domain.ErrRange,
				fmt.Errorf("min must be at least %d, max must not exceed %d", TicketLowestNumber, TicketHighestNumber))
		}
	}
	return domain.NewError("generate ticket", domain.ErrRange,
		fmt.Errorf("quantity must be in the range %d-%d", req.Min, req.Max))
}

// ParseTicketArgs converts textual draw parameters to integers.
func ParseTicketArgs(lowest, highest, quantity string) (TicketRequest, error) {
	var req TicketRequest
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"min", lowest, &req.Min},
		{"max", highest, &req.Max},
		{"quantity", quantity, &req.Quantity},
	}

	for _, f := range fields {
		n, err := strconv.Atoi(f.raw)
		if err != nil {
			return TicketRequest{}, domain.NewError("generate ticket", domain.ErrType,
				fmt.Errorf("%s must be an integer, got %q", f.name, f.raw))
		}
		*f.dst = n
	}
	return req, nil
}

// sample picks k distinct integers from [lo, hi) without replacement.
func sample(r *rand.Rand, lo, hi, k int) (domain.Ticket, error) {
	n := hi - lo
	if k < 0 || k > n {
		return nil, fmt.Errorf("sample of %d is larger than population of %d", k, max(n, 0))
	}

	picked := r.Perm(n)[:k]
	ticket := make(domain.Ticket, k)
	for i, p := range picked {
		ticket[i] = lo + p
	}
	slices.Sort(ticket)
	return ticket, nil
}
