package flow

// Cross-frame event contract between the embedded quiz and its host page.
// The service never emits these itself; they are the named notification
// boundary the presentation layer passes through.
const (
	EventOpen          = "widget:open"
	EventClose         = "widget:close"
	EventLoaded        = "widget:loaded"
	EventResultsShown  = "widget:resultsShown"
	EventPurchaseClick = "widget:purchaseClick"
)

type ResultsShownPayload struct {
	Count int `json:"count"`
}

type PurchaseClickPayload struct {
	SkuID      string `json:"sku_id"`
	ProductURL string `json:"product_url"`
}
