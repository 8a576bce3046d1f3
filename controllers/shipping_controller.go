package controllers

import (
	"bytes"
	"errors"
	"html/template"
	"time"

	"olympus-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShippingController struct {
	DB *gorm.DB
}

func NewShippingController(db *gorm.DB) *ShippingController {
	return &ShippingController{DB: db}
}

type shippingLine struct {
	models.ShippingRecord
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	PenModel      string `json:"pen_model"`
	OrderNo       string `json:"order_no"`
}

// ListShipments joins customer and pen display data onto each record.
func (c *ShippingController) ListShipments(ctx *fiber.Ctx) error {
	sql := `select s.*, w.order_no,
	coalesce(c.first_name || ' ' || c.last_name, '') as customer_name,
	coalesce(c.email, '') as customer_email,
	coalesce(p.model, '') as pen_model
	from shipping_records s
	left join work_orders w on w.id = s.work_order_id
	left join customers c on c.id = s.customer
	left join pens p on p.pen_id = s.pen
	order by s.created_at desc`

	var rows []shippingLine
	if err := c.DB.Raw(sql).Scan(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Shipments found", "data": rows})
}

// GetShipment returns a record with its latest QA verdict and order costs.
func (c *ShippingController) GetShipment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid shipping id"})
	}

	var record models.ShippingRecord
	if err := c.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipping record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.WorkOrder
	c.DB.First(&order, record.WorkOrderID)

	var qa models.QARecord
	c.DB.Where("work_order_id = ?", record.WorkOrderID).Order("created_at desc").First(&qa)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Shipment found",
		"data": fiber.Map{
			"shipping": record,
			"order":    order,
			"qa":       qa,
		},
	})
}

var packingSlipTmpl = template.Must(template.New("packing-slip").Parse(`<!DOCTYPE html>
<html>
<head><title>Packing Slip {{.OrderNo}}</title></head>
<body>
<h1>Olympus Pen Works</h1>
<h2>Packing Slip — {{.OrderNo}}</h2>
<p>Date: {{.Date}}</p>
<table border="1" cellpadding="6">
<tr><th>Customer</th><td>{{.CustomerName}}</td></tr>
<tr><th>Pen Model</th><td>{{.PenModel}}</td></tr>
<tr><th>Units Ordered</th><td>{{.TotalCount}}</td></tr>
<tr><th>Units Shipped</th><td>{{.ShippedCount}}</td></tr>
<tr><th>Expected Arrival</th><td>{{.ArrivalDate}}</td></tr>
</table>
</body>
</html>`))

// GetPackingSlip renders a printable slip for the warehouse floor.
func (c *ShippingController) GetPackingSlip(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid shipping id"})
	}

	var record models.ShippingRecord
	if err := c.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipping record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.WorkOrder
	c.DB.First(&order, record.WorkOrderID)

	var customer models.Customer
	c.DB.First(&customer, record.CustomerID)

	var pen models.Pen
	c.DB.First(&pen, "pen_id = ?", record.PenID)

	data := struct {
		OrderNo      string
		Date         string
		CustomerName string
		PenModel     string
		TotalCount   int
		ShippedCount int
		ArrivalDate  string
	}{
		OrderNo:      order.OrderNo,
		Date:         time.Now().Format(dateLayout),
		CustomerName: customer.FirstName + " " + customer.LastName,
		PenModel:     pen.PenModel,
		TotalCount:   record.TotalCount,
		ShippedCount: record.ShippedCount,
		ArrivalDate:  record.ArrivalDate,
	}

	var buf bytes.Buffer
	if err := packingSlipTmpl.Execute(&buf, data); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

// CreateReturn opens a return request for a shipped order.
func (c *ShippingController) CreateReturn(ctx *fiber.Ctx) error {
	var input struct {
		OrderID uint   `json:"order_id"`
		Reason  string `json:"reason"`
		Items   string `json:"items"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.OrderID == 0 || input.Reason == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order_id and reason are required"})
	}

	var count int64
	c.DB.Model(&models.ShippingRecord{}).Where("work_order_id = ?", input.OrderID).Count(&count)
	if count == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order has not shipped"})
	}

	ret := models.Return{
		OrderID:     input.OrderID,
		Reason:      input.Reason,
		Items:       input.Items,
		RequestedAt: time.Now().Format(dateLayout),
		Status:      models.ReturnStatusRequested,
	}
	if err := c.DB.Create(&ret).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Return requested", "data": ret})
}

func (c *ShippingController) ListReturns(ctx *fiber.Ctx) error {
	query := c.DB.Order("created_at desc")
	if orderID := ctx.QueryInt("order_id"); orderID > 0 {
		query = query.Where("order_id = ?", orderID)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var returns []models.Return
	if err := query.Find(&returns).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Returns found", "data": returns})
}

// UpdateReturn approves or rejects a requested return.
func (c *ShippingController) UpdateReturn(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid return id"})
	}

	var input struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Status != models.ReturnStatusApproved && input.Status != models.ReturnStatusRejected {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be approved or rejected"})
	}

	res := c.DB.Model(&models.Return{}).
		Where("id = ? AND status = ?", id, models.ReturnStatusRequested).
		Updates(map[string]interface{}{"status": input.Status, "notes": input.Notes})
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Return not found or already decided"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Return " + input.Status})
}
