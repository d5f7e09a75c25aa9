//go:build unit

package errs_test

import (
	"testing"

	"viajes-backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		ref   error
		want  bool
	}{
		{
			name:  "bare sentinel",
			build: func() error { return errs.ErrSaleNotFound },
			ref:   errs.ErrSaleNotFound,
			want:  true,
		},
		{
			name:  "wrapped sentinel",
			build: func() error { return errs.Wrap(errs.ErrSaleNotFound, "loading sale") },
			ref:   errs.ErrSaleNotFound,
			want:  true,
		},
		{
			name:  "marked cause",
			build: func() error { return errs.Mark(errs.New("capacity must be positive"), errs.ErrDomainValidation) },
			ref:   errs.ErrDomainValidation,
			want:  true,
		},
		{
			name:  "mark layered over a wrap",
			build: func() error { return errs.Mark(errs.Wrap(errs.New("quote missing"), "resolving rate"), errs.ErrRateUnknown) },
			ref:   errs.ErrRateUnknown,
			want:  true,
		},
		{
			name:  "unrelated sentinel",
			build: func() error { return errs.Mark(errs.New("boom"), errs.ErrOverpayment) },
			ref:   errs.ErrSaleClosed,
			want:  false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.Is(tc.build(), tc.ref))
		})
	}
}
