package controllers

import (
	"errors"
	"time"

	"olympus-app/config"
	"olympus-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (c *CustomerController) Signup(ctx *fiber.Ctx) error {
	var input struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name"`
		Email     string `json:"email" validate:"required,email"`
		Phone     string `json:"phone"`
		Password  string `json:"password" validate:"required,min=8"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.Customer{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	customer := models.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  string(hashed),
	}
	if err := c.DB.Create(&customer).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Account created",
		"data":    fiber.Map{"id": customer.ID, "email": customer.Email},
	})
}

func (c *CustomerController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer models.Customer
	if err := c.DB.Where("email = ?", input.Email).First(&customer).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := issueToken(c.DB, customer.ID, models.RoleCustomer)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Cookie(config.GetTokenCookie(token))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token": token,
			"customer": fiber.Map{
				"id":         customer.ID,
				"first_name": customer.FirstName,
				"last_name":  customer.LastName,
				"email":      customer.Email,
			},
		},
	})
}

// GetWorkOrders lists the customer's pending, not-yet-accepted orders.
func (c *CustomerController) GetWorkOrders(ctx *fiber.Ctx) error {
	customerID := uint(ctxUserID(ctx))

	var orders []models.WorkOrder
	if err := c.DB.Where("customer_id = ? AND is_accepted = ? AND status = ?",
		customerID, false, models.StatusAwaitingConfirmation).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Work orders found", "data": orders})
}

// GetHistory lists every order the customer has placed, newest first,
// whatever state it is in.
func (c *CustomerController) GetHistory(ctx *fiber.Ctx) error {
	customerID := uint(ctxUserID(ctx))

	var orders []models.WorkOrder
	if err := c.DB.Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order history found", "data": orders})
}

// Pay simulates checkout: the listed orders are paid, accepted and moved to
// production, a payment lands in the ledger and the cart is emptied.
func (c *CustomerController) Pay(ctx *fiber.Ctx) error {
	customerID := uint(ctxUserID(ctx))

	var input struct {
		OrderIDs []uint `json:"order_ids"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.OrderIDs) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order_ids is required"})
	}

	today := time.Now().Format(dateLayout)
	paid := make([]uint, 0, len(input.OrderIDs))

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for _, orderID := range input.OrderIDs {
			var order models.WorkOrder
			if err := tx.Where("id = ? AND customer_id = ?", orderID, customerID).First(&order).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if order.IsPaid || !models.CanTransition(order.Status, models.StatusInProduction) {
				continue
			}

			if err := tx.Model(&order).Updates(map[string]interface{}{
				"is_paid":     true,
				"is_accepted": true,
				"status":      models.StatusInProduction,
			}).Error; err != nil {
				return err
			}

			payment := models.Transaction{
				TransactionDate: today,
				TransactionType: models.TxTypePaymentReceived,
				Category:        "sales",
				Amount:          order.GrandTotal,
				Description:     "Storefront payment for " + order.OrderNo,
				ReferenceID:     &order.ID,
				ReferenceType:   models.RefTypeWorkOrder,
				PaymentMethod:   "card",
				CustomerID:      &customerID,
				Status:          models.TxStatusCompleted,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			paid = append(paid, order.ID)
		}

		return tx.Model(&models.Cart{}).
			Where("customer = ? AND is_active = ?", customerID, true).
			Update("is_active", false).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Payment recorded",
		"data":    fiber.Map{"paid_order_ids": paid},
	})
}

func (c *CustomerController) GetGrievances(ctx *fiber.Ctx) error {
	customerID := uint(ctxUserID(ctx))

	var grievances []models.Grievance
	if err := c.DB.Where("customer = ?", customerID).
		Order("created_at desc").Find(&grievances).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Grievances found", "data": grievances})
}

func (c *CustomerController) AddToCart(ctx *fiber.Ctx) error {
	customerID := uint(ctxUserID(ctx))

	var input struct {
		PenID uint `json:"pen_id" validate:"required"`
		Count int  `json:"count"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.PenID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pen_id is required"})
	}
	if input.Count <= 0 {
		input.Count = 1
	}

	var pen models.Pen
	if err := c.DB.First(&pen, "pen_id = ?", input.PenID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pen not found"})
	}

	item := models.Cart{
		CustomerID: customerID,
		PenID:      input.PenID,
		Count:      input.Count,
		IsActive:   true,
	}
	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Added to cart", "data": item})
}

func (c *CustomerController) GetCart(ctx *fiber.Ctx) error {
	customerID := uint(ctxUserID(ctx))

	var items []models.Cart
	if err := c.DB.Where("customer = ? AND is_active = ?", customerID, true).
		Order("created_at desc").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cart found", "data": items})
}

// GetAvailablePens lists finished pens sitting in inventory.
func (c *CustomerController) GetAvailablePens(ctx *fiber.Ctx) error {
	sql := `select i.id, i.pen_id, p.model, p.pentype, p.cost, i.weight as quantity
	from inventory_materials i
	inner join pens p on p.pen_id = i.pen_id
	where i.is_pen = true
	order by p.model`

	var rows []map[string]interface{}
	if err := c.DB.Raw(sql).Scan(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Pens found", "data": rows})
}
