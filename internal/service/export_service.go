package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/wilkensonio/reconnect-api/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAppointments = errors.New("No appointments to export")
	ErrExportGenerateFail   = errors.New("Failed to generate export file")
)

const campusTimezone = "America/New_York"

// weekdayIndex Availability.Day 文本 → Go weekday
var weekdayIndex = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ExportService 导出业务接口
//
// 设计说明：
//   - 预约导出为 Excel (.xlsx)，按教职工工号过滤
//   - 空闲时段导出为 iCalendar (.ics)，每条时段生成最近一次到来的事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAppointments 导出某教职工的预约列表为 Excel
	ExportAppointments(ctx context.Context, facultyID string) (*bytes.Buffer, string, error)
	// ExportAvailabilityICS 导出某教职工的空闲时段为 ICS 日历
	ExportAvailabilityICS(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportAppointments — 导出预约列表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "Appointments"
//   - 列: Date | Start | End | Status | Student ID | Reason | Created At
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportAppointments(ctx context.Context, facultyID string) (*bytes.Buffer, string, error) {
	appts, err := s.repo.Appointment.ListByFaculty(ctx, facultyID)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(appts) == 0 {
		return nil, "", ErrExportNoAppointments
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Appointments"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 30)
	f.SetColWidth(sheetName, "G", "G", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Date", "Start", "End", "Status", "Student ID", "Reason", "Created At"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 1), h)
		f.SetCellStyle(sheetName, cell(col, 1), cell(col, 1), headerStyle)
	}

	row := 2
	for _, appt := range appts {
		f.SetCellValue(sheetName, cell("A", row), appt.Date)
		f.SetCellValue(sheetName, cell("B", row), appt.StartTime)
		f.SetCellValue(sheetName, cell("C", row), appt.EndTime)
		f.SetCellValue(sheetName, cell("D", row), appt.Status)
		f.SetCellValue(sheetName, cell("E", row), appt.StudentID)
		f.SetCellValue(sheetName, cell("F", row), appt.Reason)
		f.SetCellValue(sheetName, cell("G", row), appt.CreatedAt)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("appointments_%s.xlsx", facultyID)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportAvailabilityICS — 导出空闲时段为 ICS 日历
// ═══════════════════════════════════════════════════════════
//
// 每条空闲时段生成一个 VEVENT，日期取该星期几的下一次到来
// （今天恰好是该星期几则取今天），附 FREQ=WEEKLY 周重复规则

func (s *exportService) ExportAvailabilityICS(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	slots, err := s.repo.Availability.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询空闲时段失败", zap.Error(err))
		return nil, "", err
	}

	loc, err := time.LoadLocation(campusTimezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ReConnect//Availability//EN")

	for _, slot := range slots {
		wd, ok := weekdayIndex[slot.Day]
		if !ok {
			continue
		}
		start, serr := combineNextWeekday(now, wd, slot.StartTime, loc)
		end, eerr := combineNextWeekday(now, wd, slot.EndTime, loc)
		if serr != nil || eerr != nil {
			continue
		}

		evt := cal.AddEvent(uuid.NewString())
		evt.SetCreatedTime(now)
		evt.SetDtStampTime(now)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary("Office hours")
		evt.SetDescription(fmt.Sprintf("Available %s %s-%s", slot.Day, slot.StartTime, slot.EndTime))
		evt.AddRrule("FREQ=WEEKLY")
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("availability_%s.ics", userID)
	return buf, filename, nil
}

// combineNextWeekday 取 weekday 的下一次到来（含当天）并拼上 HH:MM
func combineNextWeekday(now time.Time, wd time.Weekday, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	days := (int(wd) - int(now.Weekday()) + 7) % 7
	date := now.AddDate(0, 0, days)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
