// services/stock_alert.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// StockAlertService sends the shop owner a daily SMS summary of products
// running low on stock. Without Twilio credentials or an alert number it
// degrades to logging the summary.
type StockAlertService struct {
	dm      *DataManager
	client  *twilio.RestClient
	from    string
	alertTo string
}

func NewStockAlertService(dm *DataManager) *StockAlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &StockAlertService{
		dm:      dm,
		client:  client,
		from:    os.Getenv("TWILIO_PHONE_NUMBER"),
		alertTo: os.Getenv("ALERT_PHONE_NUMBER"),
	}
}

func (s *StockAlertService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendLowStockAlert)

	c.Start()
	log.Println("Stock alert scheduler started")
}

// SendLowStockAlert checks the catalog and notifies about low-stock products.
func (s *StockAlertService) SendLowStockAlert() {
	log.Println("Starting low stock check...")

	items := s.dm.GetLowStockItems()
	if len(items) == 0 {
		log.Println("No low stock items found")
		return
	}

	lines := make([]string, 0, len(items))
	for _, p := range items {
		lines = append(lines, fmt.Sprintf("%s: %d left", p.Name, p.Stock))
	}
	message := "Low stock alert:\n" + strings.Join(lines, "\n")

	if s.client == nil || s.alertTo == "" {
		log.Printf("Twilio not configured, low stock summary:\n%s", message)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.alertTo)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send low stock alert to %s: %v", s.alertTo, err)
	} else if resp.Sid != nil {
		log.Printf("Low stock alert sent to %s, SID: %s", s.alertTo, *resp.Sid)
	} else {
		log.Printf("Low stock alert sent to %s, but no SID returned", s.alertTo)
	}
}
