package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-payroll/internal/payslip"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remoteStore struct {
	payslip.Store
}

func TestServePayslipFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("local store is served under the public path", func(t *testing.T) {
		dir := t.TempDir()
		store, err := payslip.NewLocalStore(dir, "/files/payslips")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "payslip_p-1.pdf"), []byte("%PDF-1.4"), 0o644))

		r := gin.New()
		servePayslipFiles(r, store, "/files/payslips/")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/payslips/payslip_p-1.pdf", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "%PDF-1.4", w.Body.String())
	})

	t.Run("absolute public url is not served", func(t *testing.T) {
		store, err := payslip.NewLocalStore(t.TempDir(), "https://cdn.example.com/payslips")
		require.NoError(t, err)

		r := gin.New()
		servePayslipFiles(r, store, "https://cdn.example.com/payslips")
		assert.Empty(t, r.Routes())
	})

	t.Run("non-local store is not served", func(t *testing.T) {
		r := gin.New()
		servePayslipFiles(r, remoteStore{}, "/files/payslips")
		assert.Empty(t, r.Routes())
	})
}
