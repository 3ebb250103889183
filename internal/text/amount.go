package text

// Amount-bucket tokens. These participate in the vocabulary as ordinary
// features, so the classifier can learn that e.g. grocery runs cluster in
// the "large" band while coffee sits in "tiny".
const (
	BucketTiny   = "tiny_amount"
	BucketSmall  = "small_amount"
	BucketMedium = "medium_amount"
	BucketLarge  = "large_amount"
	BucketHuge   = "huge_amount"
)

// AmountBucket maps a transaction amount onto its categorical bucket token.
func AmountBucket(amount float64) string {
	switch {
	case amount < 100:
		return BucketTiny
	case amount < 500:
		return BucketSmall
	case amount < 1000:
		return BucketMedium
	case amount < 5000:
		return BucketLarge
	default:
		return BucketHuge
	}
}
