package bankdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/cashops/cash-bank/internal/domain"
	"github.com/cashops/cash-bank/internal/middleware"
	"github.com/cashops/cash-bank/pkg/currencypkg"
	"github.com/cashops/cash-bank/pkg/errorspkg"
	"github.com/cashops/cash-bank/pkg/randompkg"
	"github.com/cashops/cash-bank/pkg/tokenpkg"
	"github.com/cashops/cash-bank/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testUser = domain.User{ID: 1, Name: "alice", Role: domain.Role{ID: 3, Name: domain.RoleUser}}

func testExchange() *currencypkg.Exchange {
	return currencypkg.NewExchange([]currencypkg.Rate{
		{
			From:    currencypkg.EUR,
			To:      currencypkg.USD,
			Rate:    decimal.RequireFromString("1.08"),
			Reverse: decimal.RequireFromString("0.93"),
		},
	})
}

func newTestRouter(t *testing.T, service Service, users Users) (*gin.Engine, tokenpkg.Maker) {
	t.Helper()

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	handler := NewHandler(service, users, testExchange())

	router := gin.New()
	router.POST("/sessions", handler.Login)

	authRoutes := router.Group("/").Use(middleware.AuthMiddleware(tokenMaker))
	authRoutes.DELETE("/sessions", handler.Logout)
	authRoutes.POST("/accounts/:id/deposits", handler.Deposit)
	authRoutes.POST("/accounts/:id/withdrawals", handler.Withdraw)
	authRoutes.POST("/transfers", handler.Transfer)
	authRoutes.GET("/exchange", handler.ExchangeQuote)

	return router, tokenMaker
}

func addAuthorization(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker, username string) {
	t.Helper()

	token, _, err := tokenMaker.CreateToken(username, time.Minute)
	require.NoError(t, err)

	authorizationHeader := fmt.Sprintf("%s %s", middleware.AuthorizationTypeBearer, token)
	request.Header.Set(middleware.AuthorizationHeaderKey, authorizationHeader)
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) web.Response {
	t.Helper()

	var resp web.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return resp
}

func TestLogin(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(service *MockService)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"username": "alice", "password": "secret123"},
			buildStubs: func(service *MockService) {
				service.EXPECT().LogIn(gomock.Any(), gomock.Eq("alice"), gomock.Eq([]byte("secret123"))).
					Times(1).Return("token", nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, "token", decodeResponse(t, recorder).AccessToken)
			},
		},
		{
			name:       "MissingUsername",
			body:       gin.H{"password": "secret123"},
			buildStubs: func(service *MockService) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Contains(t, decodeResponse(t, recorder).Error, "Username")
			},
		},
		{
			name:       "ShortPassword",
			body:       gin.H{"username": "alice", "password": "short"},
			buildStubs: func(service *MockService) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Contains(t, decodeResponse(t, recorder).Error, "Password")
			},
		},
		{
			name: "WrongCredentials",
			body: gin.H{"username": "alice", "password": "secret123"},
			buildStubs: func(service *MockService) {
				service.EXPECT().LogIn(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return("", domain.ErrAuthentication)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InternalError",
			body: gin.H{"username": "alice", "password": "secret123"},
			buildStubs: func(service *MockService) {
				service.EXPECT().LogIn(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return("", errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				require.Equal(t, errorspkg.ErrInternal.Error(), decodeResponse(t, recorder).Error)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			users := NewMockUsers(ctrl)
			tc.buildStubs(service)

			router, _ := newTestRouter(t, service, users)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker)
		buildStubs    func(service *MockService)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				addAuthorization(t, request, tokenMaker, testUser.Name)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().LogOut(gomock.Any(), gomock.Eq(testUser.Name)).Times(1).Return(true)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "NoActiveSession",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				addAuthorization(t, request, tokenMaker, testUser.Name)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().LogOut(gomock.Any(), gomock.Eq(testUser.Name)).Times(1).Return(false)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:       "NoAuthorization",
			setupAuth:  func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {},
			buildStubs: func(service *MockService) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			users := NewMockUsers(ctrl)
			tc.buildStubs(service)

			router, tokenMaker := newTestRouter(t, service, users)

			request, err := http.NewRequest(http.MethodDelete, "/sessions", nil)
			require.NoError(t, err)
			tc.setupAuth(t, request, tokenMaker)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestDeposit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		url           string
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker)
		buildStubs    func(service *MockService, users *MockUsers)
		wantCode      int
	}{
		{
			name: "OK",
			url:  "/accounts/10/deposits",
			body: gin.H{"amount": "202.43", "description": "salary"},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				addAuthorization(t, request, tokenMaker, testUser.Name)
			},
			buildStubs: func(service *MockService, users *MockUsers) {
				users.EXPECT().GetUserByName(gomock.Any(), gomock.Eq(testUser.Name)).Times(1).
					Return(testUser, nil)
				service.EXPECT().PaymentIn(gomock.Any(), gomock.Eq(testUser), gomock.Any(),
					gomock.Eq("salary"), gomock.Eq(int32(10))).Times(1).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "UnparsableAmount",
			url:  "/accounts/10/deposits",
			body: gin.H{"amount": "lots"},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				addAuthorization(t, request, tokenMaker, testUser.Name)
			},
			buildStubs: func(service *MockService, users *MockUsers) {},
			wantCode:   http.StatusBadRequest,
		},
		{
			name: "NegativeAmountRejected",
			url:  "/accounts/10/deposits",
			body: gin.H{"amount": "-500"},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				addAuthorization(t, request, tokenMaker, testUser.Name)
			},
			buildStubs: func(service *MockService, users *MockUsers) {
				users.EXPECT().GetUserByName(gomock.Any(), gomock.Any()).Times(1).Return(testUser, nil)
				service.EXPECT().PaymentIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Eq(int32(10))).Times(1).Return(domain.ErrInvalidAmount)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "AccountNotFound",
			url:  "/accounts/999/deposits",
			body: gin.H{"amount": "100"},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {
				addAuthorization(t, request, tokenMaker, testUser.Name)
			},
			buildStubs: func(service *MockService, users *MockUsers) {
				users.EXPECT().GetUserByName(gomock.Any(), gomock.Any()).Times(1).Return(testUser, nil)
				service.EXPECT().PaymentIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Eq(int32(999))).Times(1).Return(domain.ErrAccountNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:       "NoAuthorization",
			url:        "/accounts/10/deposits",
			body:       gin.H{"amount": "100"},
			setupAuth:  func(t *testing.T, request *http.Request, tokenMaker tokenpkg.Maker) {},
			buildStubs: func(service *MockService, users *MockUsers) {},
			wantCode:   http.StatusUnauthorized,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			users := NewMockUsers(ctrl)
			tc.buildStubs(service, users)

			router, tokenMaker := newTestRouter(t, service, users)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewReader(body))
			require.NoError(t, err)
			tc.setupAuth(t, request, tokenMaker)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{name: "OK", wantCode: http.StatusOK},
		{name: "InsufficientBalance", serviceErr: domain.ErrInsufficientBalance, wantCode: http.StatusUnprocessableEntity},
		{name: "NotAuthorized", serviceErr: domain.ErrNotAuthorized, wantCode: http.StatusForbidden},
		{name: "LockTimeout", serviceErr: domain.ErrLockTimeout, wantCode: http.StatusConflict},
		{name: "PersistenceFailure", serviceErr: domain.ErrPersistence, wantCode: http.StatusInternalServerError},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			users := NewMockUsers(ctrl)

			users.EXPECT().GetUserByName(gomock.Any(), gomock.Eq(testUser.Name)).Times(1).Return(testUser, nil)
			service.EXPECT().PaymentOut(gomock.Any(), gomock.Eq(testUser), gomock.Any(), gomock.Any(),
				gomock.Eq(int32(10))).Times(1).Return(tc.serviceErr)

			router, tokenMaker := newTestRouter(t, service, users)

			body, err := json.Marshal(gin.H{"amount": "300"})
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/accounts/10/withdrawals", bytes.NewReader(body))
			require.NoError(t, err)
			addAuthorization(t, request, tokenMaker, testUser.Name)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		body       gin.H
		buildStubs func(service *MockService, users *MockUsers)
		wantCode   int
	}{
		{
			name: "OK",
			body: gin.H{"from_account_id": 1, "to_account_id": 2, "amount": "300"},
			buildStubs: func(service *MockService, users *MockUsers) {
				users.EXPECT().GetUserByName(gomock.Any(), gomock.Eq(testUser.Name)).Times(1).
					Return(testUser, nil)
				service.EXPECT().InternalPayment(gomock.Any(), gomock.Eq(testUser), gomock.Any(),
					gomock.Any(), gomock.Eq(int32(1)), gomock.Eq(int32(2))).Times(1).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:       "MissingDestination",
			body:       gin.H{"from_account_id": 1, "amount": "300"},
			buildStubs: func(service *MockService, users *MockUsers) {},
			wantCode:   http.StatusBadRequest,
		},
		{
			name: "AtomicityFailure",
			body: gin.H{"from_account_id": 1, "to_account_id": 2, "amount": "300"},
			buildStubs: func(service *MockService, users *MockUsers) {
				users.EXPECT().GetUserByName(gomock.Any(), gomock.Any()).Times(1).Return(testUser, nil)
				service.EXPECT().InternalPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
					gomock.Any(), gomock.Any()).Times(1).Return(domain.ErrAtomicity)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "UnknownCaller",
			body: gin.H{"from_account_id": 1, "to_account_id": 2, "amount": "300"},
			buildStubs: func(service *MockService, users *MockUsers) {
				users.EXPECT().GetUserByName(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			users := NewMockUsers(ctrl)
			tc.buildStubs(service, users)

			router, tokenMaker := newTestRouter(t, service, users)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			require.NoError(t, err)
			addAuthorization(t, request, tokenMaker, testUser.Name)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestExchangeQuote(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		url           string
		wantCode      int
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "OK",
			url:      "/exchange?from=EUR&to=USD&amount=100",
			wantCode: http.StatusOK,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				data, ok := decodeResponse(t, recorder).Data.(map[string]any)
				require.True(t, ok)
				require.Equal(t, "108.00", data["converted"])
			},
		},
		{
			name:     "ReverseRate",
			url:      "/exchange?from=USD&to=EUR&amount=100",
			wantCode: http.StatusOK,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				data, ok := decodeResponse(t, recorder).Data.(map[string]any)
				require.True(t, ok)
				require.Equal(t, "93.00", data["converted"])
			},
		},
		{
			name:     "UnsupportedCurrency",
			url:      "/exchange?from=RMB&to=USD&amount=100",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "UnknownPair",
			url:      "/exchange?from=EUR&to=PLN&amount=100",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "UnparsableAmount",
			url:      "/exchange?from=EUR&to=USD&amount=lots",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "MissingParams",
			url:      "/exchange?from=EUR",
			wantCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			users := NewMockUsers(ctrl)

			router, tokenMaker := newTestRouter(t, service, users)

			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)
			addAuthorization(t, request, tokenMaker, testUser.Name)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, recorder)
			}
		})
	}
}
