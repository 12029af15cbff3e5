package riderapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"rider/internal/adapters/out/riderapi"
	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type recordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          string
}

// ClientTestSuite runs the client against an httptest backend whose answers
// each test programs through handle.
type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	client   *riderapi.Client
	mu       sync.Mutex
	requests []recordedRequest
	handle   func(w http.ResponseWriter, r *http.Request)
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.handle = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          string(body),
		})
		handle := s.handle
		s.mu.Unlock()
		handle(w, r)
	}))
	s.client = s.newClient(riderapi.Config{BaseURL: s.server.URL, Token: "static-token", Timeout: time.Second})
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) newClient(cfg riderapi.Config) *riderapi.Client {
	client, err := riderapi.NewClient(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	return client
}

func (s *ClientTestSuite) setHandler(handle func(w http.ResponseWriter, r *http.Request)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handle = handle
}

func (s *ClientTestSuite) respond(status int, payload any) {
	s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	})
}

func (s *ClientTestSuite) clearRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *ClientTestSuite) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *ClientTestSuite) lastRequest() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func mustID(t *testing.T, n int64) kernel.DeliveryID {
	t.Helper()
	id, err := kernel.NewDeliveryID(n)
	if err != nil {
		t.Fatalf("delivery id: %v", err)
	}
	return id
}

func (s *ClientTestSuite) TestNewClient() {
	s.Run("should reject an empty base URL", func() {
		_, err := riderapi.NewClient(riderapi.Config{}, nil, nil)
		s.ErrorIs(err, errs.ErrValueIsRequired)
	})

	s.Run("should reject a non-http scheme", func() {
		_, err := riderapi.NewClient(riderapi.Config{BaseURL: "ftp://backend"}, nil, nil)
		s.ErrorIs(err, errs.ErrValueIsInvalid)
	})
}

func (s *ClientTestSuite) TestListMine() {
	s.Run("should unwrap the envelope and resolve field aliases", func() {
		s.respond(http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{
					"deliveryId":          1,
					"orderDeliveryStatus": "ASSIGNED",
					"storeName":           "김밥천국",
					"storeAddress":        "서울 마포구",
					"dropoffAddress":      "서울 용산구",
					"orderDeliveryFee":    3500,
					"deliveryRequest":     "문 앞에 두세요",
				},
				{
					"orderDeliveryId":      "2",
					"status":               "IN_DELIVERY",
					"store":                map[string]any{"storeName": "중국집", "storeAddress": "서울 중구"},
					"orderAddressSnapshot": "서울 종로구",
					"deliveryFee":          "4000",
					"requestMemo":          "벨 누르지 마세요",
				},
				{"id": 3},
			},
		})

		got, err := s.client.ListMine(s.T().Context())

		s.Require().NoError(err)
		s.Require().Len(got, 3)

		first := got[0].Details()
		s.Equal(int64(1), got[0].ID().Int64())
		s.Equal(delivery.StatusAssigned, got[0].Status())
		s.Equal("김밥천국", first.StoreName)
		s.Equal("서울 마포구", first.StoreAddress)
		s.Equal("서울 용산구", first.DropoffAddress)
		s.Require().NotNil(first.Fee)
		s.Equal(int64(3500), *first.Fee)
		s.Equal("문 앞에 두세요", first.RequestMemo)

		second := got[1].Details()
		s.Equal(int64(2), got[1].ID().Int64())
		s.Equal(delivery.StepDelivering, got[1].Step())
		s.Equal("중국집", second.StoreName)
		s.Equal("서울 중구", second.StoreAddress)
		s.Equal("서울 종로구", second.DropoffAddress)
		s.Require().NotNil(second.Fee)
		s.Equal(int64(4000), *second.Fee)
		s.Equal("벨 누르지 마세요", second.RequestMemo)

		third := got[2].Details()
		s.Equal("가게", third.StoreName)
		s.Equal("-", third.StoreAddress)
		s.Equal("-", third.DropoffAddress)
		s.Nil(third.Fee)
		s.Equal(delivery.StepWaiting, got[2].Step())

		req := s.lastRequest()
		s.Equal(http.MethodGet, req.Method)
		s.Equal("/api/v1/rider/deliveries", req.Path)
		s.Equal("Bearer static-token", req.Authorization)
		s.NotEmpty(req.RequestID)
	})

	s.Run("should skip records without an identifier", func() {
		s.respond(http.StatusOK, map[string]any{
			"data": []map[string]any{
				{"orderDeliveryStatus": "ASSIGNED"},
				{"deliveryId": "abc"},
				{"deliveryId": 9, "orderDeliveryStatus": "ACCEPTED"},
			},
		})

		got, err := s.client.ListMine(s.T().Context())

		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(int64(9), got[0].ID().Int64())
	})

	s.Run("should return an empty list when data is absent", func() {
		s.respond(http.StatusOK, map[string]any{"success": true})

		got, err := s.client.ListMine(s.T().Context())

		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("should prefer the token carried by the context", func() {
		s.respond(http.StatusOK, map[string]any{"data": []any{}})

		_, err := s.client.ListMine(riderapi.WithToken(s.T().Context(), "Bearer rider-token"))

		s.Require().NoError(err)
		s.Equal("Bearer rider-token", s.lastRequest().Authorization)
	})

	s.Run("should keep an unknown status verbatim", func() {
		s.respond(http.StatusOK, map[string]any{"data": []map[string]any{{"deliveryId": 4, "orderDeliveryStatus": "RETURNED"}}})

		got, err := s.client.ListMine(s.T().Context())

		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(delivery.Status("RETURNED"), got[0].Status())
		s.Equal(delivery.StepWaiting, got[0].Step())
	})
}

func (s *ClientTestSuite) TestListByStatus() {
	s.Run("should send the status as a query filter", func() {
		s.respond(http.StatusOK, map[string]any{"data": []map[string]any{{"deliveryId": 5, "orderDeliveryStatus": "PICKED_UP"}}})

		got, err := s.client.ListByStatus(s.T().Context(), delivery.StatusPickedUp)

		s.Require().NoError(err)
		s.Len(got, 1)
		req := s.lastRequest()
		s.Equal("/api/v1/rider/deliveries/status", req.Path)
		s.Equal("orderDeliveryStatus=PICKED_UP", req.Query)
	})

	s.Run("should reject an unknown status before any request", func() {
		s.clearRequests()

		_, err := s.client.ListByStatus(s.T().Context(), delivery.Status("BOGUS"))

		s.ErrorIs(err, errs.ErrValueIsInvalid)
		s.Zero(s.requestCount())
	})

	s.Run("should surface success=false as a rejection", func() {
		s.respond(http.StatusOK, map[string]any{"success": false, "message": "권한이 없습니다."})

		_, err := s.client.ListByStatus(s.T().Context(), delivery.StatusAssigned)

		s.Require().ErrorIs(err, errs.ErrRemoteRejected)
		var remote *errs.RemoteError
		s.Require().ErrorAs(err, &remote)
		s.Equal("권한이 없습니다.", remote.Message)
	})

	s.Run("should classify an undecodable body as malformed", func() {
		s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := s.client.ListByStatus(s.T().Context(), delivery.StatusAssigned)

		s.ErrorIs(err, errs.ErrRemoteMalformed)
	})
}

func (s *ClientTestSuite) TestGet() {
	s.Run("should use the path identifier when the body omits it", func() {
		s.respond(http.StatusOK, map[string]any{"data": map[string]any{"orderDeliveryStatus": "ACCEPTED", "storeName": "분식집"}})

		got, err := s.client.Get(s.T().Context(), mustID(s.T(), 12))

		s.Require().NoError(err)
		s.Equal(int64(12), got.ID().Int64())
		s.Equal(delivery.StepAccepted, got.Step())
		s.Equal("분식집", got.Details().StoreName)
		s.Equal("/api/v1/rider/deliveries/12", s.lastRequest().Path)
	})

	s.Run("should map 404 to object not found", func() {
		s.respond(http.StatusNotFound, map[string]any{"success": false, "message": "배달을 찾을 수 없습니다."})

		_, err := s.client.Get(s.T().Context(), mustID(s.T(), 13))

		s.ErrorIs(err, errs.ErrObjectNotFound)
	})

	s.Run("should map null data to object not found", func() {
		s.respond(http.StatusOK, map[string]any{"success": true, "data": nil})

		_, err := s.client.Get(s.T().Context(), mustID(s.T(), 14))

		s.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (s *ClientTestSuite) TestCoordinates() {
	s.Run("should validate both markers", func() {
		s.respond(http.StatusOK, map[string]any{"data": map[string]any{
			"storeLatitude": 37.55, "storeLongitude": 126.92,
			"dropoffLatitude": "37.53", "dropoffLongitude": "126.97",
		}})

		got, err := s.client.Coordinates(s.T().Context(), mustID(s.T(), 21))

		s.Require().NoError(err)
		s.Equal(int64(21), got.DeliveryID.Int64())
		s.InDelta(37.55, got.Store.Lat(), 1e-9)
		s.InDelta(126.97, got.Dropoff.Lng(), 1e-9)
		s.Equal("/api/v1/rider/deliveries/21/coordinates", s.lastRequest().Path)
	})

	s.Run("should reject out-of-range coordinates as malformed", func() {
		s.respond(http.StatusOK, map[string]any{"data": map[string]any{
			"storeLatitude": 137.0, "storeLongitude": 126.92,
			"dropoffLatitude": 37.53, "dropoffLongitude": 126.97,
		}})

		_, err := s.client.Coordinates(s.T().Context(), mustID(s.T(), 22))

		s.ErrorIs(err, errs.ErrRemoteMalformed)
	})
}

func (s *ClientTestSuite) TestPerform() {
	s.Run("should post to the operation path without a body", func() {
		s.respond(http.StatusOK, map[string]any{"message": "배달을 수락했습니다."})

		msg, err := s.client.Perform(s.T().Context(), delivery.ActionAccept, mustID(s.T(), 42))

		s.Require().NoError(err)
		s.Equal("배달을 수락했습니다.", msg)
		req := s.lastRequest()
		s.Equal(http.MethodPost, req.Method)
		s.Equal("/api/v1/deliveries/42/accept", req.Path)
		s.Empty(req.Body)
	})

	s.Run("should map every action kind to its path", func() {
		s.respond(http.StatusOK, map[string]any{})
		paths := map[delivery.ActionKind]string{
			delivery.ActionPickupComplete: "/api/v1/deliveries/7/pickup-complete",
			delivery.ActionStartDelivery:  "/api/v1/deliveries/7/start",
			delivery.ActionComplete:       "/api/v1/deliveries/7/complete",
		}
		for kind, path := range paths {
			msg, err := s.client.Perform(s.T().Context(), kind, mustID(s.T(), 7))
			s.Require().NoError(err)
			s.Empty(msg)
			s.Equal(path, s.lastRequest().Path)
		}
	})

	s.Run("should carry the configured actor", func() {
		client := s.newClient(riderapi.Config{BaseURL: s.server.URL, ActorID: 77})
		s.respond(http.StatusOK, map[string]any{})

		_, err := client.Perform(s.T().Context(), delivery.ActionComplete, mustID(s.T(), 8))

		s.Require().NoError(err)
		s.JSONEq(`{"delivererId":77}`, s.lastRequest().Body)
	})

	s.Run("should treat a plain text success as performed", func() {
		s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		msg, err := s.client.Perform(s.T().Context(), delivery.ActionComplete, mustID(s.T(), 5))

		s.Require().NoError(err)
		s.Empty(msg)
		s.Equal("/api/v1/deliveries/5/complete", s.lastRequest().Path)
	})

	s.Run("should treat an empty success as performed", func() {
		s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		msg, err := s.client.Perform(s.T().Context(), delivery.ActionStartDelivery, mustID(s.T(), 6))

		s.Require().NoError(err)
		s.Empty(msg)
	})

	s.Run("should reject an envelope reporting failure", func() {
		s.respond(http.StatusOK, map[string]any{"success": false, "message": "픽업 전입니다."})

		_, err := s.client.Perform(s.T().Context(), delivery.ActionStartDelivery, mustID(s.T(), 6))

		var remote *errs.RemoteError
		s.Require().ErrorAs(err, &remote)
		s.ErrorIs(err, errs.ErrRemoteRejected)
		s.Equal("픽업 전입니다.", remote.Message)
		s.Equal("POST /api/v1/deliveries/6/start", remote.Operation)
	})

	s.Run("should reject a plain text failure without a message", func() {
		s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Internal Server Error"))
		})

		_, err := s.client.Perform(s.T().Context(), delivery.ActionAccept, mustID(s.T(), 13))

		var remote *errs.RemoteError
		s.Require().ErrorAs(err, &remote)
		s.Equal(http.StatusInternalServerError, remote.StatusCode)
		s.Empty(remote.Message)
	})

	s.Run("should return the server message on rejection", func() {
		s.respond(http.StatusBadRequest, map[string]any{"message": "이미 배정된 배달입니다."})

		_, err := s.client.Perform(s.T().Context(), delivery.ActionAccept, mustID(s.T(), 9))

		var remote *errs.RemoteError
		s.Require().ErrorAs(err, &remote)
		s.Equal(http.StatusBadRequest, remote.StatusCode)
		s.Equal("이미 배정된 배달입니다.", remote.Message)
	})

	s.Run("should report transport failures as unavailable", func() {
		client := s.newClient(riderapi.Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

		_, err := client.Perform(s.T().Context(), delivery.ActionAccept, mustID(s.T(), 10))

		s.ErrorIs(err, errs.ErrRemoteUnavailable)
	})

	s.Run("should honour context cancellation", func() {
		ctx, cancel := context.WithCancel(s.T().Context())
		cancel()

		_, err := s.client.Perform(ctx, delivery.ActionAccept, mustID(s.T(), 11))

		s.ErrorIs(err, errs.ErrRemoteUnavailable)
		s.ErrorIs(err, context.Canceled)
	})

	s.Run("should reject an unknown action kind before any request", func() {
		s.clearRequests()

		_, err := s.client.Perform(s.T().Context(), delivery.ActionKind("CANCEL"), mustID(s.T(), 12))

		s.ErrorIs(err, errs.ErrValueIsInvalid)
		s.Zero(s.requestCount())
	})
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
