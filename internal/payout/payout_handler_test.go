package payout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payout"
	payouterrors "go-payroll/internal/payout/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Count *int            `json:"count"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayoutService struct {
	generateFn   func(ctx context.Context, req payout.GeneratePayoutsRequest) ([]payout.PayoutResponse, error)
	getHistoryFn func(ctx context.Context, employeeID string) ([]payout.PayoutResponse, error)
	getByIDFn    func(ctx context.Context, id string) (payout.PayoutResponse, error)
	getSlipFn    func(ctx context.Context, id string) (payout.SlipResponse, error)
	markPaidFn   func(ctx context.Context, id string) (payout.PayoutResponse, error)
}

func (f *fakePayoutService) Generate(ctx context.Context, req payout.GeneratePayoutsRequest) ([]payout.PayoutResponse, error) {
	return f.generateFn(ctx, req)
}

func (f *fakePayoutService) GetHistory(ctx context.Context, employeeID string) ([]payout.PayoutResponse, error) {
	return f.getHistoryFn(ctx, employeeID)
}

func (f *fakePayoutService) GetByID(ctx context.Context, id string) (payout.PayoutResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayoutService) GetSlip(ctx context.Context, id string) (payout.SlipResponse, error) {
	return f.getSlipFn(ctx, id)
}

func (f *fakePayoutService) MarkAsPaid(ctx context.Context, id string) (payout.PayoutResponse, error) {
	return f.markPaidFn(ctx, id)
}

func TestPayoutHandler_Generate(t *testing.T) {
	svc := &fakePayoutService{
		generateFn: func(ctx context.Context, req payout.GeneratePayoutsRequest) ([]payout.PayoutResponse, error) {
			assert.Equal(t, "2025-04", req.Period)
			assert.Empty(t, req.EmployeeID)
			return []payout.PayoutResponse{
				{ID: uuid.New().String(), Period: req.Period, Status: payout.StatusGenerated},
				{ID: uuid.New().String(), Period: req.Period, Status: payout.StatusGenerated},
			}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"period":"2025-04"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payouts/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	if assert.NotNil(t, env.Count) {
		assert.Equal(t, 2, *env.Count)
	}
}

func TestPayoutHandler_Generate_Conflict(t *testing.T) {
	svc := &fakePayoutService{
		generateFn: func(ctx context.Context, req payout.GeneratePayoutsRequest) ([]payout.PayoutResponse, error) {
			return nil, payouterrors.ErrAlreadyGenerated
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"period":"2025-04"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payouts/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayoutHandler_Generate_MissingPeriod(t *testing.T) {
	h := payout.NewHandler(&fakePayoutService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payouts/generate", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayoutHandler_GetHistory_EmployeeSeesOwnOnly(t *testing.T) {
	ownID := uuid.New().String()
	otherID := uuid.New().String()

	svc := &fakePayoutService{
		getHistoryFn: func(ctx context.Context, employeeID string) ([]payout.PayoutResponse, error) {
			assert.Equal(t, ownID, employeeID)
			return []payout.PayoutResponse{{ID: uuid.New().String(), EmployeeID: employeeID}}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Query filter must be ignored for the employee role.
	c.Request = httptest.NewRequest(http.MethodGet, "/payouts/history?employee_id="+otherID, nil)
	c.Set("role", "employee")
	c.Set("employee_id", ownID)

	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	if assert.NotNil(t, env.Count) {
		assert.Equal(t, 1, *env.Count)
	}
}

func TestPayoutHandler_GetHistory_ManagerFilter(t *testing.T) {
	filterID := uuid.New().String()

	svc := &fakePayoutService{
		getHistoryFn: func(ctx context.Context, employeeID string) ([]payout.PayoutResponse, error) {
			assert.Equal(t, filterID, employeeID)
			return nil, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payouts/history?employee_id="+filterID, nil)
	c.Set("role", "manager")

	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayoutHandler_GetSlip_OwnershipDenied(t *testing.T) {
	payoutID := uuid.New().String()

	svc := &fakePayoutService{
		getByIDFn: func(ctx context.Context, id string) (payout.PayoutResponse, error) {
			return payout.PayoutResponse{ID: id, EmployeeID: uuid.New().String()}, nil
		},
		getSlipFn: func(ctx context.Context, id string) (payout.SlipResponse, error) {
			t.Fatal("slip must not be rendered for a non-owner")
			return payout.SlipResponse{}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payouts/"+payoutID+"/slip", nil)
	c.Params = []gin.Param{{Key: "id", Value: payoutID}}
	c.Set("role", "employee")
	c.Set("employee_id", uuid.New().String())

	h.GetSlip(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestPayoutHandler_GetSlip_ManagerDenied(t *testing.T) {
	payoutID := uuid.New().String()

	svc := &fakePayoutService{
		getByIDFn: func(ctx context.Context, id string) (payout.PayoutResponse, error) {
			return payout.PayoutResponse{ID: id, EmployeeID: uuid.New().String()}, nil
		},
		getSlipFn: func(ctx context.Context, id string) (payout.SlipResponse, error) {
			t.Fatal("slip must not be rendered for a non-owner")
			return payout.SlipResponse{}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Managers see payout history but slips stay owner-or-admin only.
	c.Request = httptest.NewRequest(http.MethodGet, "/payouts/"+payoutID+"/slip", nil)
	c.Params = []gin.Param{{Key: "id", Value: payoutID}}
	c.Set("role", "manager")
	c.Set("employee_id", uuid.New().String())

	h.GetSlip(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestPayoutHandler_GetSlip_AdminBypassesOwnership(t *testing.T) {
	payoutID := uuid.New().String()

	svc := &fakePayoutService{
		getByIDFn: func(ctx context.Context, id string) (payout.PayoutResponse, error) {
			t.Fatal("admin access must not require the ownership lookup")
			return payout.PayoutResponse{}, nil
		},
		getSlipFn: func(ctx context.Context, id string) (payout.SlipResponse, error) {
			return payout.SlipResponse{PayoutID: id, PayoutSlipURL: "/files/payout-slips/payout_slip_" + id + ".pdf"}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payouts/"+payoutID+"/slip", nil)
	c.Params = []gin.Param{{Key: "id", Value: payoutID}}
	c.Set("role", "admin")

	h.GetSlip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayoutHandler_GetSlip_Owner(t *testing.T) {
	payoutID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayoutService{
		getByIDFn: func(ctx context.Context, id string) (payout.PayoutResponse, error) {
			return payout.PayoutResponse{ID: id, EmployeeID: employeeID}, nil
		},
		getSlipFn: func(ctx context.Context, id string) (payout.SlipResponse, error) {
			return payout.SlipResponse{PayoutID: id, PayoutSlipURL: "/files/payout-slips/payout_slip_" + id + ".pdf"}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payouts/"+payoutID+"/slip", nil)
	c.Params = []gin.Param{{Key: "id", Value: payoutID}}
	c.Set("role", "employee")
	c.Set("employee_id", employeeID)

	h.GetSlip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayoutHandler_MarkAsPaid(t *testing.T) {
	payoutID := uuid.New().String()

	svc := &fakePayoutService{
		markPaidFn: func(ctx context.Context, id string) (payout.PayoutResponse, error) {
			assert.Equal(t, payoutID, id)
			return payout.PayoutResponse{ID: id, Status: payout.StatusPaid}, nil
		},
	}

	h := payout.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payouts/"+payoutID+"/mark-paid", nil)
	c.Params = []gin.Param{{Key: "id", Value: payoutID}}

	h.MarkAsPaid(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
