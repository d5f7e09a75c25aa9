//go:build e2e

package commission_test

import (
	"net/http"
	"testing"

	reqdto "viajes-backoffice/internal/handler/dto/request"
	"viajes-backoffice/internal/handler/dto/response"
	"viajes-backoffice/tests/common/authtest"
	"viajes-backoffice/tests/common/builder"
	"viajes-backoffice/tests/common/dbtest"
	"viajes-backoffice/tests/common/httptest"
	"viajes-backoffice/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	salesURL       = "/api/sales"
	settleURL      = "/api/commissions/settle"
	commissionsURL = "/api/commissions"
)

type CommissionSuite struct {
	e2e.SharedSuite
}

func (s *CommissionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCommissionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CommissionSuite))
}

func (s *CommissionSuite) sellerToken(sellerID uuid.UUID) string {
	return authtest.GenerateToken(s.T(), s.Config.JWT, sellerID, "seller")
}

func idempotencyKey() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

// createSettledSale registers a sale fully paid at creation: total 1000,
// margin 15%, vendor rate 10% -> a frozen commission of 15.00.
func (s *CommissionSuite) createSettledSale(t *testing.T, token string) uuid.UUID {
	t.Helper()

	reqBody := builder.NewSaleBuilder().
		WithTotalPrice("1000.00").
		WithInitialPayment(builder.NewPaymentBuilder().WithAmount("1000.00").BuildRequestDTO()).
		BuildCreateRequestDTO()

	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, salesURL, reqBody, token, idempotencyKey())
	var created response.CreateSaleResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.Equal(t, "settled", created.Sale.Status)
	return created.Sale.ID
}

func (s *CommissionSuite) createActiveSale(t *testing.T, token string) uuid.UUID {
	t.Helper()

	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, salesURL,
		builder.NewSaleBuilder().BuildCreateRequestDTO(), token, idempotencyKey())
	var created response.CreateSaleResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created.Sale.ID
}

// =============================================================================
// TestSettleCommissions - batch payout closing settled sales
// =============================================================================

func (s *CommissionSuite) TestSettleCommissions() {
	s.Run("Normal case: the batch closes every sale and writes the ledger", func() {
		t := s.T()
		sellerID := uuid.New()
		token := s.sellerToken(sellerID)

		first := s.createSettledSale(t, token)
		second := s.createSettledSale(t, token)

		reqBody := reqdto.SettleCommissionsRequest{
			SaleIDs: []uuid.UUID{first, second},
			Method:  "transfer",
			Note:    "august batch",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqBody, token)

		var result response.SettleCommissionsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Len(t, result.EntryIDs, 2)
		require.Equal(t, 2, result.SalesClosed)

		_, status := dbtest.SaleState(t, s.DB, first)
		require.Equal(t, "closed", status)
		_, status = dbtest.SaleState(t, s.DB, second)
		require.Equal(t, "closed", status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL, nil, token)
		var entries []*response.CommissionEntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &entries)
		require.Len(t, entries, 2)
		require.Equal(t, "15", entries[0].Amount.String())
		require.Equal(t, "transfer", entries[0].Method)
		require.NotNil(t, entries[0].Note)
		require.Equal(t, "august batch", *entries[0].Note)
	})

	s.Run("Error case: a closed sale cannot be paid out twice", func() {
		t := s.T()
		token := s.sellerToken(uuid.New())
		saleID := s.createSettledSale(t, token)

		reqBody := reqdto.SettleCommissionsRequest{
			SaleIDs: []uuid.UUID{saleID},
			Method:  "cash",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "closed")
	})

	s.Run("Error case: one active sale fails the whole batch", func() {
		t := s.T()
		token := s.sellerToken(uuid.New())

		settled := s.createSettledSale(t, token)
		active := s.createActiveSale(t, token)

		reqBody := reqdto.SettleCommissionsRequest{
			SaleIDs: []uuid.UUID{settled, active},
			Method:  "transfer",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not settled")

		// all or nothing: the settled sale stays settled, no entries written
		_, status := dbtest.SaleState(t, s.DB, settled)
		require.Equal(t, "settled", status)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "commission_entries", ""))
	})

	s.Run("Error case: another seller's sale looks like it does not exist", func() {
		t := s.T()
		owner := s.sellerToken(uuid.New())
		saleID := s.createSettledSale(t, owner)

		intruder := s.sellerToken(uuid.New())
		reqBody := reqdto.SettleCommissionsRequest{
			SaleIDs: []uuid.UUID{saleID},
			Method:  "transfer",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqBody, intruder)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Error case: an unknown payout method is rejected", func() {
		t := s.T()
		token := s.sellerToken(uuid.New())
		saleID := s.createSettledSale(t, token)

		reqBody := reqdto.SettleCommissionsRequest{
			SaleIDs: []uuid.UUID{saleID},
			Method:  "voucher",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})
}

// =============================================================================
// TestListEntries - the seller's payout ledger
// =============================================================================

func (s *CommissionSuite) TestListEntries() {
	s.Run("Normal case: the ledger is scoped to the requesting seller", func() {
		t := s.T()
		token := s.sellerToken(uuid.New())
		otherToken := s.sellerToken(uuid.New())

		saleID := s.createSettledSale(t, token)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, settleURL, reqdto.SettleCommissionsRequest{
			SaleIDs: []uuid.UUID{saleID},
			Method:  "cash",
		}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL, nil, otherToken)
		var entries []*response.CommissionEntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &entries)
		require.Empty(t, entries)
	})
}
