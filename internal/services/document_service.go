package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"trace-backend/internal/cache"
	"trace-backend/internal/document"
	"trace-backend/internal/metrics"
	"trace-backend/internal/models"
)

// BarcodeRenderer renders a lot number to PNG bytes.
type BarcodeRenderer interface {
	Render(lotNumber string) ([]byte, error)
}

// SettingsReader is the settings slice the document service needs.
type SettingsReader interface {
	GetValue(ctx context.Context, key, fallback string) string
}

// DocumentService produces the lot barcode payload and the printable PDF.
type DocumentService struct {
	Lots       LotStore
	Activities ActivityStore
	Farms      FarmStore
	Barcode    BarcodeRenderer
	Settings   SettingsReader // optional
}

func NewDocumentService(lots LotStore, activities ActivityStore, farms FarmStore, barcodeRenderer BarcodeRenderer) *DocumentService {
	return &DocumentService{
		Lots:       lots,
		Activities: activities,
		Farms:      farms,
		Barcode:    barcodeRenderer,
	}
}

// SetSettings wires the system settings store (org name on PDF headers).
func (s *DocumentService) SetSettings(settings SettingsReader) {
	s.Settings = settings
}

// RenderBarcode returns the barcode payload for a lot: a PNG data URI plus
// the fields a label printer needs. PNGs are cached per lot number since the
// output is deterministic.
func (s *DocumentService) RenderBarcode(ctx context.Context, lotID int) (*models.BarcodeResponse, error) {
	lot, err := s.Lots.Get(ctx, lotID)
	if err != nil {
		return nil, err
	}

	png, hit := cache.GetCachedBarcode(ctx, lot.LotNumber)
	if !hit {
		png, err = s.Barcode.Render(lot.LotNumber)
		if err != nil {
			return nil, err
		}
		cache.CacheBarcode(ctx, lot.LotNumber, png)
	}
	metrics.DocumentsRendered.WithLabelValues("barcode").Inc()

	farmName := lot.FarmName
	if farmName == "" {
		if farm, err := s.Farms.Get(ctx, lot.FarmID); err == nil {
			farmName = farm.Name
		}
	}

	return &models.BarcodeResponse{
		BarcodeImage: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		LotNumber:    lot.LotNumber,
		FarmName:     farmName,
		HarvestDate:  lot.HarvestDate,
	}, nil
}

// RenderPDF composes the lot traceability document and returns the bytes
// plus the download filename.
func (s *DocumentService) RenderPDF(ctx context.Context, lotID int) ([]byte, string, error) {
	lot, err := s.Lots.Get(ctx, lotID)
	if err != nil {
		return nil, "", err
	}
	farm, err := s.Farms.Get(ctx, lot.FarmID)
	if err != nil {
		return nil, "", err
	}
	activities, err := s.Activities.ListByLot(ctx, lotID)
	if err != nil {
		return nil, "", err
	}

	orgName := ""
	if s.Settings != nil {
		orgName = s.Settings.GetValue(ctx, "org_name", "")
	}

	renderer := document.NewRenderer(s.Barcode, orgName)
	data, err := renderer.Render(lot, farm, activities)
	if err != nil {
		return nil, "", err
	}
	metrics.DocumentsRendered.WithLabelValues("pdf").Inc()

	return data, fmt.Sprintf("lot-%s.pdf", lot.LotNumber), nil
}
