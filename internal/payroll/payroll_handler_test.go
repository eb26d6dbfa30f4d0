package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"

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

type fakePayrollService struct {
	generateFn       func(ctx context.Context, actorID string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error)
	projectFn        func(ctx context.Context, req payroll.ProjectionRequest) ([]payroll.PayrollResponse, error)
	bulkTransitionFn func(ctx context.Context, actorID string, req payroll.BulkTransitionRequest) (payroll.BulkTransitionResponse, error)
	getAllFn         func(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, int64, error)
	getByIDFn        func(ctx context.Context, id string) (payroll.PayrollResponse, error)
	renderPayslipFn  func(ctx context.Context, id string) ([]byte, error)
}

func (f *fakePayrollService) Generate(ctx context.Context, actorID string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	return f.generateFn(ctx, actorID, req)
}

func (f *fakePayrollService) Project(ctx context.Context, req payroll.ProjectionRequest) ([]payroll.PayrollResponse, error) {
	return f.projectFn(ctx, req)
}

func (f *fakePayrollService) BulkTransition(ctx context.Context, actorID string, req payroll.BulkTransitionRequest) (payroll.BulkTransitionResponse, error) {
	return f.bulkTransitionFn(ctx, actorID, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, int64, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollService) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	return f.renderPayslipFn(ctx, id)
}

func TestPayrollHandler_Generate(t *testing.T) {
	actorID := uuid.New().String()

	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, aid string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, 3, *req.Month)
			assert.Equal(t, 2026, req.Year)
			return payroll.GeneratePayrollResponse{Month: 3, Year: 2026, Generated: 12}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"month":3,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id_validated", actorID)

	h.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp payroll.GeneratePayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 12, resp.Generated)
}

func TestPayrollHandler_Generate_MonthZeroIsValid(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, aid string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
			assert.Equal(t, 0, *req.Month)
			return payroll.GeneratePayrollResponse{Month: 0, Year: 2026}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// January: month 0 must pass required-field validation
	body := `{"month":0,"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id_validated", uuid.New().String())

	h.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayrollHandler_Generate_MissingMonth(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"year":2026}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_Projection(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		projectFn: func(ctx context.Context, req payroll.ProjectionRequest) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, 1, *req.Month)
			return []payroll.PayrollResponse{{EmployeeID: employeeID, Status: payroll.StatusDraft}}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/projection?month=1&year=2026&employee_id="+employeeID, nil)

	h.Projection(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_BulkStatus_InvalidTransitionError(t *testing.T) {
	svc := &fakePayrollService{
		bulkTransitionFn: func(ctx context.Context, actorID string, req payroll.BulkTransitionRequest) (payroll.BulkTransitionResponse, error) {
			return payroll.BulkTransitionResponse{}, payrollerrors.ErrPaymentDetailsRequired
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"ids":["` + uuid.New().String() + `"],"action":"PAY"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/bulk-status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id_validated", uuid.New().String())

	h.BulkStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestPayrollHandler_GetById_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, id string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/"+uuid.New().String(), nil)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	payrollID := uuid.New().String()
	svc := &fakePayrollService{
		renderPayslipFn: func(ctx context.Context, id string) ([]byte, error) {
			assert.Equal(t, payrollID, id)
			return []byte("%PDF-1.4 fake"), nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/"+payrollID+"/payslip", nil)
	c.Params = gin.Params{{Key: "id", Value: payrollID}}

	h.DownloadPayslip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), payrollID)
}
