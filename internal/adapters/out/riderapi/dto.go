package riderapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/errs"
)

// Known field names per logical field, in priority order. Backend DTO
// versions disagree on naming; these lists are the only place that knows.
// A dotted alias descends into a nested object.
var (
	idAliases             = []string{"deliveryId", "orderDeliveryId", "id"}
	statusAliases         = []string{"orderDeliveryStatus", "status"}
	storeNameAliases      = []string{"storeName", "store.storeName"}
	storeAddressAliases   = []string{"storeAddress", "store.storeAddress"}
	dropoffAddressAliases = []string{"dropoffAddress", "orderAddressSnapshot", "address", "deliveryAddress"}
	feeAliases            = []string{"orderDeliveryFee", "deliveryFee", "fee"}
	requestMemoAliases    = []string{"deliveryRequest", "requestMemo", "orderRequest"}

	storeLatAliases   = []string{"storeLatitude", "store.latitude", "storeLat"}
	storeLngAliases   = []string{"storeLongitude", "store.longitude", "storeLng"}
	dropoffLatAliases = []string{"dropoffLatitude", "dropoff.latitude", "dropoffLat"}
	dropoffLngAliases = []string{"dropoffLongitude", "dropoff.longitude", "dropoffLng"}
)

const (
	defaultStoreName = "가게"
	defaultAddress   = "-"
)

// errNoIdentity marks a record that carries no identifier under any alias.
var errNoIdentity = errors.New("record has no delivery identifier")

// record is one backend object decoded with json.Number preserved.
type record map[string]any

func decodeRecord(raw []byte) (record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var r record
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeRecords(raw []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// lookup returns the value at a dotted path, treating JSON null as absent.
func (r record) lookup(path string) (any, bool) {
	var cur any = map[string]any(r)
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// first returns the value of the first alias present in the record.
func (r record) first(aliases []string) (any, bool) {
	for _, alias := range aliases {
		if v, ok := r.lookup(alias); ok {
			return v, true
		}
	}
	return nil, false
}

func (r record) string(aliases []string, fallback string) string {
	v, ok := r.first(aliases)
	if !ok {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

func (r record) int64(aliases []string) (int64, bool, error) {
	v, ok := r.first(aliases)
	if !ok {
		return 0, false, nil
	}
	n, err := toInt64(v)
	return n, true, err
}

func (r record) float64(aliases []string) (float64, error) {
	v, ok := r.first(aliases)
	if !ok {
		return 0, errs.NewValueIsRequiredError(aliases[0])
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(aliases[0], err)
	}
	return f, nil
}

// identity resolves the delivery identifier from the first alias present.
func (r record) identity() (kernel.DeliveryID, error) {
	n, ok, err := r.int64(idAliases)
	if !ok {
		return 0, errNoIdentity
	}
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("deliveryId", err)
	}
	return kernel.NewDeliveryID(n)
}

// toDomain is the single ingestion point turning a backend record into a Delivery.
func (r record) toDomain() (delivery.Delivery, error) {
	id, err := r.identity()
	if err != nil {
		return delivery.Delivery{}, err
	}

	details := delivery.Details{
		StoreName:      r.string(storeNameAliases, defaultStoreName),
		StoreAddress:   r.string(storeAddressAliases, defaultAddress),
		DropoffAddress: r.string(dropoffAddressAliases, defaultAddress),
		RequestMemo:    r.string(requestMemoAliases, ""),
	}
	if fee, ok, feeErr := r.int64(feeAliases); ok && feeErr == nil {
		details.Fee = &fee
	}

	status := delivery.StatusFromWire(r.string(statusAliases, ""))
	return delivery.NewDelivery(id, status, details)
}

// toCoordinates resolves coordinate fields; the path identifier wins when the
// body carries none.
func (r record) toCoordinates(fallback kernel.DeliveryID) (delivery.Coordinates, error) {
	id, err := r.identity()
	if errors.Is(err, errNoIdentity) {
		id, err = fallback, nil
	}
	if err != nil {
		return delivery.Coordinates{}, err
	}

	storeLat, e1 := r.float64(storeLatAliases)
	storeLng, e2 := r.float64(storeLngAliases)
	dropoffLat, e3 := r.float64(dropoffLatAliases)
	dropoffLng, e4 := r.float64(dropoffLngAliases)
	if err = errors.Join(e1, e2, e3, e4); err != nil {
		return delivery.Coordinates{}, err
	}
	return delivery.NewCoordinates(id, storeLat, storeLng, dropoffLat, dropoffLng)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt64(f)
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	case float64:
		return floatToInt64(n)
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int64(f), nil
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}
