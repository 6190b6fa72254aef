package payroll_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

type errorBody struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPayrollHandler_Create(t *testing.T) {
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), companyID, actorID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				assert.Equal(t, employeeID, req.EmployeeID)
				assert.Equal(t, 2, req.Month)
				require.NotNil(t, req.GrossSalary)
				assert.Equal(t, int64(1_600_000), *req.GrossSalary)
				return payroll.PayrollResponse{ID: uuid.NewString(), Status: payroll.StatusPending}, nil
			})

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls",
			`{"employee_id":"`+employeeID+`","month":2,"year":2026,"gross_salary":1600000}`)
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
	})

	t.Run("invalid status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := payroll.NewHandler(payrollMock.NewMockService(ctrl), nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls",
			`{"employee_id":"`+employeeID+`","month":2,"year":2026,"status":"CANCELLED"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, w).Error.Code)
	})

	t.Run("duplicate period is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), companyID, actorID, gomock.Any()).
			Return(payroll.PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls",
			`{"employee_id":"`+employeeID+`","month":2,"year":2026}`)
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", decodeError(t, w).Error.Code)
	})
}

func TestPayrollHandler_Generate(t *testing.T) {
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("returns the batch report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			Generate(gomock.Any(), companyID, actorID, payroll.GeneratePayrollRequest{Month: 2, Year: 2026}).
			Return(payroll.BatchReport{
				Processed: 2, Successful: 1, Failed: 1,
				Results: []payroll.BatchResult{{EmployeeID: "e-1", Name: "Ana Soto", PayrollID: "p-1"}},
				Errors:  []payroll.BatchError{{EmployeeID: "e-2", Name: "Luis Soto", Message: "payroll already exists for 2/2026"}},
			}, nil)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/generate", `{"month":2,"year":2026}`)
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Generate(c)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data payroll.BatchReport `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Data.Processed)
		assert.Equal(t, "payroll already exists for 2/2026", body.Data.Errors[0].Message)
	})

	t.Run("invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Generate(gomock.Any(), companyID, actorID, gomock.Any()).
			Return(payroll.BatchReport{}, payrollerrors.ErrInvalidMonth)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/generate", `{"month":13,"year":2026}`)
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no employees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Generate(gomock.Any(), companyID, actorID, gomock.Any()).
			Return(payroll.BatchReport{}, payrollerrors.ErrNoEmployeesInCompany)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/generate", `{"month":2,"year":2026}`)
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Generate(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_GetAll(t *testing.T) {
	companyID := uuid.NewString()
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	svc.EXPECT().
		GetAll(gomock.Any(), companyID, gomock.Any()).
		DoAndReturn(func(_ any, _ string, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error) {
			require.NotNil(t, filter.Year)
			assert.Equal(t, 2026, *filter.Year)
			assert.Equal(t, payroll.StatusPaid, filter.Status)
			return []payroll.PayrollResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		})

	h := payroll.NewHandler(svc, nil, zap.NewNop())
	c, w := newTestContext(http.MethodGet, "/api/v1/payrolls?year=2026&status=PAID&page=2&page_size=2", "")
	c.Set(middleware.ContextCompanyID, companyID)

	h.GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []payroll.PayrollResponse `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "3", body.Data[0].ID)
	assert.Equal(t, int64(3), body.Meta.Total)
}

func TestPayrollHandler_Update(t *testing.T) {
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	id := uuid.NewString()

	t.Run("paid to pending rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), companyID, actorID, id, gomock.Any()).
			DoAndReturn(func(_ any, _, _, _ string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
				require.NotNil(t, req.Status)
				assert.Equal(t, payroll.StatusPending, *req.Status)
				return payroll.PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
			})

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPatch, "/api/v1/payrolls/"+id, `{"status":"PENDING"}`)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Update(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "INVALID_STATE", decodeError(t, w).Error.Code)
	})

	t.Run("mark paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		paidAt := "2026-02-28T18:00:00Z"
		svc.EXPECT().Update(gomock.Any(), companyID, actorID, id, gomock.Any()).
			Return(payroll.PayrollResponse{ID: id, Status: payroll.StatusPaid, PaidAt: &paidAt}, nil)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPatch, "/api/v1/payrolls/"+id, `{"status":"PAID"}`)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), paidAt)
	})
}

func TestPayrollHandler_Delete(t *testing.T) {
	companyID := uuid.NewString()
	id := uuid.NewString()

	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), companyID, id).Return(payrollerrors.ErrDeletePaidPayroll)

	h := payroll.NewHandler(svc, nil, zap.NewNop())
	c, w := newTestContext(http.MethodDelete, "/api/v1/payrolls/"+id, "")
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Set(middleware.ContextCompanyID, companyID)

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cannot delete a paid payroll", decodeError(t, w).Error.Message)
}

func TestPayrollHandler_Payslip(t *testing.T) {
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	id := uuid.NewString()

	t.Run("request is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().RequestPayslip(gomock.Any(), companyID, actorID, id).Return(nil)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodPost, "/api/v1/payrolls/"+id+"/payslip", "")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.ContextCompanyID, companyID)
		c.Set(middleware.ContextUserID, actorID)

		h.RequestPayslip(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("download redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().GetPayslipURL(gomock.Any(), companyID, id).Return("/files/payslips/payslip_"+id+".pdf", nil)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodGet, "/api/v1/payrolls/"+id+"/payslip/download", "")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.ContextCompanyID, companyID)

		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "/files/payslips/payslip_"+id+".pdf", w.Header().Get("Location"))
	})

	t.Run("download before generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().GetPayslipURL(gomock.Any(), companyID, id).Return("", payrollerrors.ErrPayslipNotGenerated)

		h := payroll.NewHandler(svc, nil, zap.NewNop())
		c, w := newTestContext(http.MethodGet, "/api/v1/payrolls/"+id+"/payslip/download", "")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.ContextCompanyID, companyID)

		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
