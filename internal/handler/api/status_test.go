//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"linkpay/internal/domain/payment"
	"linkpay/internal/handler/api"
	"linkpay/internal/infra"
	"linkpay/internal/usecase/queries"
	"linkpay/tests/common/httptest"
	commandsmock "linkpay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatusHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPending *commandsmock.MockPendingPaymentRepository
	mockEncoder *commandsmock.MockQRCodeEncoder
}

func (s *StatusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPending = commandsmock.NewMockPendingPaymentRepository(s.mockCtrl)
	s.mockEncoder = commandsmock.NewMockQRCodeEncoder(s.mockCtrl)

	statusQuery := queries.NewCheckoutStatusQuery(s.mockPending, s.mockEncoder)
	handler := api.NewStatusHandler(statusQuery)

	s.router.GET("/urls/check-status/:sessionId", handler.CheckStatus)
}

func (s *StatusHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatusHandlerTestSuite))
}

func (s *StatusHandlerTestSuite) TestCheckStatus() {
	sessionID := uuid.New()
	url := "/urls/check-status/" + sessionID.String()

	s.Run("pending session has no short url", func() {
		s.mockPending.EXPECT().FindBySessionID(gomock.Any(), sessionID).
			Return(pendingRecord(sessionID, payment.StatusPending, nil), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("pending", resp["status"])
		s.Equal(sessionID.String(), resp["sessionId"])
		s.NotContains(resp, "shortUrl")
		s.NotContains(resp, "qrCodeDataUrl")
	})

	s.Run("completed session returns short url and regenerated qr", func() {
		shortURL := "https://sho.rt/abc123"
		s.mockPending.EXPECT().FindBySessionID(gomock.Any(), sessionID).
			Return(pendingRecord(sessionID, payment.StatusCompleted, &shortURL), nil)
		s.mockEncoder.EXPECT().DataURL(shortURL).
			Return("data:image/png;base64,qr", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("completed", resp["status"])
		s.Equal(shortURL, resp["shortUrl"])
		s.Equal("data:image/png;base64,qr", resp["qrCodeDataUrl"])
	})

	s.Run("failed session reports its status", func() {
		s.mockPending.EXPECT().FindBySessionID(gomock.Any(), sessionID).
			Return(pendingRecord(sessionID, payment.StatusFailed, nil), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("failed", resp["status"])
	})

	s.Run("unknown session returns 404", func() {
		s.mockPending.EXPECT().FindBySessionID(gomock.Any(), sessionID).
			Return(nil, infra.WrapRepoErr("pending payment not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed session id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/urls/check-status/not-a-uuid", nil, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
