//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"linkpay/internal/handler/api"
	"linkpay/internal/infra"
	"linkpay/internal/infra/gateway"
	"linkpay/internal/pkg/clock"
	"linkpay/internal/pkg/config"
	"linkpay/internal/usecase/commands"
	"linkpay/tests/common/builder"
	"linkpay/tests/common/httptest"
	"linkpay/tests/common/testutil"
	commandsmock "linkpay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPending *commandsmock.MockPendingPaymentRepository
	mockUrls    *commandsmock.MockUrlRepository
	mockLegacy  *commandsmock.MockLegacyPaymentRepository
	mockGateway *commandsmock.MockPaymentGateway
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPending = commandsmock.NewMockPendingPaymentRepository(s.mockCtrl)
	s.mockUrls = commandsmock.NewMockUrlRepository(s.mockCtrl)
	s.mockLegacy = commandsmock.NewMockLegacyPaymentRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)

	checkout := commands.NewCheckoutUsecase(
		s.mockPending, s.mockUrls, s.mockLegacy, s.mockGateway,
		config.NewTestConfig().Shortlink,
		clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		slog.Default(),
	)
	handler := api.NewCheckoutHandler(checkout)

	s.router.POST("/prefer", handler.CreatePreference)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) expectHappyPath() {
	s.mockGateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		Return(&gateway.Preference{ID: "pref-123", InitPoint: "https://gw.example/init"}, nil)
	s.mockPending.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockLegacy.EXPECT().RecordCheckout(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *CheckoutHandlerTestSuite) TestCreatePreference() {
	url := "/prefer"
	reqBody := builder.NewCheckoutBuilder().BuildRequestBody()

	s.Run("success: returns 201 with preference and session ids", func() {
		s.expectHappyPath()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		s.Equal(http.StatusCreated, rec.Code)

		var resp map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("pref-123", resp["id"])
		s.NotEmpty(resp["sessionId"])
	})

	s.Run("validation: missing originalUrl returns 400", func() {
		body := builder.NewCheckoutBuilder().BuildRequestBody()
		testutil.Field("originalUrl", nil)(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation: malformed url returns 400", func() {
		body := builder.NewCheckoutBuilder().BuildRequestBody()
		testutil.Field("originalUrl", "not a url")(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation: zero quantity returns 400", func() {
		body := builder.NewCheckoutBuilder().BuildRequestBody()
		testutil.Field("quantity", -1)(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("validation: alias with illegal characters returns 400", func() {
		body := builder.NewCheckoutBuilder().WithAlias("no spaces!").BuildRequestBody()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("conflict: taken alias returns 409", func() {
		body := builder.NewCheckoutBuilder().WithAlias("taken-alias").BuildRequestBody()

		taken := existingURL(s.T(), "taken-alias")
		s.mockUrls.EXPECT().FindByShortCode(gomock.Any(), "taken-alias").Return(taken, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("free alias proceeds to checkout", func() {
		body := builder.NewCheckoutBuilder().WithAlias("free-alias").BuildRequestBody()

		s.mockUrls.EXPECT().FindByShortCode(gomock.Any(), "free-alias").
			Return(nil, infra.WrapRepoErr("url not found", nil, infra.KindNotFound))
		s.expectHappyPath()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("gateway failure returns 500", func() {
		s.mockGateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("gateway down", nil, infra.KindDBFailure))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
