package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"confkit/internal/domain"
)

type generator struct{}

// NewGenerator returns a QRGenerator backed by skip2/go-qrcode.
func NewGenerator() domain.QRGenerator {
	return &generator{}
}

func (g *generator) PNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
