package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

var planExportHeaders = []string{
	"No", "Item", "Kategori", "Jumlah", "Satuan", "Harga Satuan", "Estimasi Biaya", "Menu",
}

// ExportService renders procurement plans as spreadsheets. With object storage
// configured the file is uploaded and shared through a presigned link,
// otherwise the caller streams the bytes directly.
type ExportService struct {
	planRepo *repository.PlanRepository
	mc       *minio.Client
	bucket   string
}

func NewExportService(planRepo *repository.PlanRepository, mc *minio.Client, bucket string) *ExportService {
	return &ExportService{planRepo: planRepo, mc: mc, bucket: bucket}
}

// PlanWorkbook builds the export file for one plan.
func (s *ExportService) PlanWorkbook(ctx context.Context, actor Actor, planID string) (*excelize.File, string, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, planID)
	if err != nil {
		return nil, "", planNotFound(err)
	}

	f := excelize.NewFile()
	sheet := "Rencana Pengadaan"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	period := entity.PlanPeriod{Month: plan.PlanMonth, Year: plan.PlanYear, Quarter: plan.PlanQuarter}

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Rencana Pengadaan %s", period.Label()))
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Status: %s", plan.ApprovalStatus))
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Total Anggaran: %.2f", plan.TotalBudget))
	f.SetCellValue(sheet, "A4", fmt.Sprintf("Teralokasi: %.2f", plan.AllocatedBudget))

	const headerRow = 6
	for i, h := range planExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	var totalCost float64
	for idx, item := range plan.Items {
		row := headerRow + 1 + idx
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), idx+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.BudgetCategory)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.TotalQuantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.UnitCost)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), item.EstimatedCost)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), item.MenuCount)
		totalCost += item.EstimatedCost
	}

	summaryRow := headerRow + 1 + len(plan.Items)
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("%d item", len(plan.Items)))
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), totalCost)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("H%d", summaryRow), summaryStyle)

	colWidths := []float64{6, 28, 16, 10, 8, 14, 16, 8}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("rencana-pengadaan_%d-%02d_%s.xlsx", plan.PlanYear, plan.PlanMonth, plan.ID[:8])
	return f, filename, nil
}

// UploadPlanExport writes the workbook to object storage and returns a
// presigned download link valid for 24 hours.
func (s *ExportService) UploadPlanExport(ctx context.Context, actor Actor, planID string) (string, error) {
	if s.mc == nil {
		return "", fmt.Errorf("object storage not configured")
	}

	f, filename, err := s.PlanWorkbook(ctx, actor, planID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}

	objectName := fmt.Sprintf("exports/%s/%s", actor.SppgID, filename)
	_, err = s.mc.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}

	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	link, err := s.mc.PresignedGetObject(ctx, s.bucket, objectName, 24*time.Hour, params)
	if err != nil {
		return "", fmt.Errorf("presign export: %w", err)
	}
	return link.String(), nil
}
