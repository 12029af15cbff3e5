package delivery

// LatestRequest returns the first delivery awaiting the rider's acceptance.
// The backend exposes no creation time, so list order decides.
func LatestRequest(deliveries []Delivery) (Delivery, bool) {
	for _, d := range deliveries {
		if d.Step() == StepRequested {
			return d, true
		}
	}
	return Delivery{}, false
}
