package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus int

const (
	PurchaseOrderStatusAwaitingApproval PurchaseOrderStatus = 0
	PurchaseOrderStatusApproved         PurchaseOrderStatus = 1
	PurchaseOrderStatusReceived         PurchaseOrderStatus = 2
	PurchaseOrderStatusCancelled        PurchaseOrderStatus = 3
)

func (s PurchaseOrderStatus) String() string {
	switch s {
	case PurchaseOrderStatusApproved:
		return "Approved"
	case PurchaseOrderStatusReceived:
		return "Received"
	case PurchaseOrderStatusCancelled:
		return "Cancelled"
	default:
		return "Awaiting Approval"
	}
}

func (s PurchaseOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseOrderStatus(i)
		return nil
	}
	switch str {
	case "Approved":
		*s = PurchaseOrderStatusApproved
	case "Received":
		*s = PurchaseOrderStatusReceived
	case "Cancelled":
		*s = PurchaseOrderStatusCancelled
	default:
		*s = PurchaseOrderStatusAwaitingApproval
	}
	return nil
}

func (s PurchaseOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseOrderStatusAwaitingApproval
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseOrderStatus(v)
	case int:
		*s = PurchaseOrderStatus(v)
	}
	return nil
}
