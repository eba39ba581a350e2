package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

func apiBase() string {
	if base := os.Getenv("PAKASIR_API_BASE"); base != "" {
		return base
	}
	return "https://app.pakasir.com/api"
}

// PakasirConfig membaca kredensial gateway dari env.
func PakasirConfig() (project string, apiKey string) {
	return os.Getenv("PAKASIR_PROJECT"), os.Getenv("PAKASIR_API_KEY")
}

type PaymentInstrument struct {
	PaymentNumber string    `json:"payment_number"`
	PaymentMethod string    `json:"payment_method"`
	TotalPayment  int64     `json:"total_payment"`
	Fee           int64     `json:"fee"`
	ExpiredAt     time.Time `json:"expired_at"`
}

// CreateTransaction membuat transaksi baru di Pakasir dan mengembalikan
// instruksi pembayaran (QR string / nomor VA).
func CreateTransaction(method, orderID string, amount int64) (*PaymentInstrument, error) {
	project, apiKey := PakasirConfig()
	if project == "" || apiKey == "" {
		return nil, fmt.Errorf("pakasir is not configured")
	}

	payload := map[string]any{
		"project":  project,
		"order_id": orderID,
		"amount":   amount,
		"api_key":  apiKey,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/transactioncreate/%s", apiBase(), method)
	resp, err := httpClient.Post(url, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Printf("[PAKASIR] ❌ transactioncreate request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[PAKASIR] ❌ API error: %s", string(bodyBytes))
		return nil, fmt.Errorf("failed to create payment, status: %s", resp.Status)
	}

	var result struct {
		Payment *PaymentInstrument `json:"payment"`
	}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		log.Printf("[PAKASIR] ❌ Failed to decode JSON response: %v", err)
		return nil, err
	}

	if result.Payment == nil {
		return nil, fmt.Errorf("invalid response from pakasir: missing payment")
	}

	return result.Payment, nil
}
