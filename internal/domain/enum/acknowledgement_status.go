package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AcknowledgementStatus represents where a sales order is in its lifecycle
type AcknowledgementStatus int

const (
	AcknowledgementStatusAcknowledged     AcknowledgementStatus = 0
	AcknowledgementStatusInProduction     AcknowledgementStatus = 1
	AcknowledgementStatusReadyToShip      AcknowledgementStatus = 2
	AcknowledgementStatusPartiallyShipped AcknowledgementStatus = 3
	AcknowledgementStatusShipped          AcknowledgementStatus = 4
	AcknowledgementStatusInvoiced         AcknowledgementStatus = 5
	AcknowledgementStatusCancelled        AcknowledgementStatus = 6
)

var acknowledgementStatusNames = [...]string{
	"Acknowledged",
	"In Production",
	"Ready To Ship",
	"Partially Shipped",
	"Shipped",
	"Invoiced",
	"Cancelled",
}

func (s AcknowledgementStatus) String() string {
	if s < 0 || int(s) >= len(acknowledgementStatusNames) {
		return fmt.Sprintf("AcknowledgementStatus(%d)", int(s))
	}
	return acknowledgementStatusNames[s]
}

// IsValid reports whether s is a known status
func (s AcknowledgementStatus) IsValid() bool {
	return s >= 0 && int(s) < len(acknowledgementStatusNames)
}

// ParseAcknowledgementStatus resolves a status from its display name
func ParseAcknowledgementStatus(name string) (AcknowledgementStatus, bool) {
	for i, n := range acknowledgementStatusNames {
		if n == name {
			return AcknowledgementStatus(i), true
		}
	}
	return 0, false
}

func (s AcknowledgementStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AcknowledgementStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AcknowledgementStatus(i)
		return nil
	}
	status, ok := ParseAcknowledgementStatus(str)
	if !ok {
		return fmt.Errorf("unknown acknowledgement status %q", str)
	}
	*s = status
	return nil
}

func (s AcknowledgementStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AcknowledgementStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AcknowledgementStatusAcknowledged
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AcknowledgementStatus(v)
	case int:
		*s = AcknowledgementStatus(v)
	}
	return nil
}
