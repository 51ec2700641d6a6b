// Package qr genera los códigos QR que enlazan al formulario público de
// captura de un palenque (impresos en etiquetas y material del punto de venta).
package qr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	minSize     = 64
	defaultSize = 512
	maxSize     = 2048
)

// GeneratePNG codifica content como QR y lo devuelve como PNG de size×size
// píxeles. size fuera de rango se ajusta a los límites.
func GeneratePNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: contenido vacío")
	}
	if size <= 0 {
		size = defaultSize
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr: escalar: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qr: PNG: %w", err)
	}
	return buf.Bytes(), nil
}
