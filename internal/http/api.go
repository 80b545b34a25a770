package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"emedicine/internal/domain"
	"emedicine/internal/service"
)

// Fixed client-facing messages. Internal error detail is logged, never
// returned.
const (
	msgUserExists     = "User already exist!!!"
	msgUserRegistered = "User registered successfully!"
	msgInvalidLogin   = "Invalid email or password"
	msgLoginOK        = "User successfully logged in!"
	msgUserNotFound   = "User not found"
	msgOrderPlaced    = "Order placed successfully!"
	msgEmailRequired  = "Email is required"
	msgInternalError  = "Internal Server Error"
	msgServerRunning  = "Server is running smoothly"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth    service.AuthService
	orders  service.OrderService
	catalog service.CatalogService
	logger  *logrus.Logger
}

func NewHandler(auth service.AuthService, orders service.OrderService, catalog service.CatalogService, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:    auth,
		orders:  orders,
		catalog: catalog,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/", h.serverStatus)
	router.GET("/medicines", h.listMedicines)
	router.GET("/orders", h.listOrders)
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/orders", h.placeOrder)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) serverStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   msgServerRunning,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": msgUserExists,
			})
			return
		}
		h.serverError(c, "register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": msgUserRegistered,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": msgInvalidLogin})
			return
		}
		h.serverError(c, "login user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     msgLoginOK,
		"accessToken": token,
	})
}

type cartItemRequest struct {
	MedicineID string  `json:"medicineId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type shippingAddressRequest struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type placeOrderRequest struct {
	UserEmail       string                 `json:"useremail" binding:"required"`
	Cart            []cartItemRequest      `json:"cart"`
	TotalPrice      float64                `json:"totalPrice"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := make([]domain.CartItem, len(req.Cart))
	for i, item := range req.Cart {
		cart[i] = domain.CartItem{
			MedicineID: item.MedicineID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}
	shipping := domain.ShippingAddress{
		FullName:   req.ShippingAddress.FullName,
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		PostalCode: req.ShippingAddress.PostalCode,
		Phone:      req.ShippingAddress.Phone,
	}

	err := h.orders.PlaceOrder(c.Request.Context(), req.UserEmail, cart, req.TotalPrice, shipping)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		h.serverError(c, "place order", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": msgOrderPlaced,
	})
}

// listOrders serves both forms of the endpoint: without the email key it
// returns every order, with a non-empty email it filters, and with the
// key present but empty it rejects rather than silently returning all.
func (h *Handler) listOrders(c *gin.Context) {
	var (
		orders []domain.Order
		err    error
	)

	if emails, filtered := c.Request.URL.Query()["email"]; filtered {
		email := ""
		if len(emails) > 0 {
			email = emails[0]
		}
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailRequired})
			return
		}
		orders, err = h.orders.ListOrdersByEmail(c.Request.Context(), email)
	} else {
		orders, err = h.orders.ListOrders(c.Request.Context())
	}
	if err != nil {
		h.serverError(c, "list orders", err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i := range orders {
		resp[i] = orderToResponse(orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listMedicines(c *gin.Context) {
	medicines, err := h.catalog.ListMedicines(c.Request.Context())
	if err != nil {
		h.serverError(c, "list medicines", err)
		return
	}

	resp := make([]MedicineResponse, len(medicines))
	for i := range medicines {
		resp[i] = medicineToResponse(medicines[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) serverError(c *gin.Context, op string, err error) {
	h.logger.WithError(err).Errorf("%s failed", op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}

type CartItemResponse struct {
	MedicineID string  `json:"medicineId,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type ShippingAddressResponse struct {
	FullName   string `json:"fullName,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type OrderResponse struct {
	ID              string                  `json:"_id"`
	UserEmail       string                  `json:"userEmail"`
	Cart            []CartItemResponse      `json:"cart"`
	TotalPrice      float64                 `json:"totalPrice"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	OrderDate       string                  `json:"orderDate"`
	Status          domain.OrderStatus      `json:"status"`
}

type MedicineResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageURL,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

func orderToResponse(order domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:         order.ID,
		UserEmail:  order.UserEmail,
		Cart:       make([]CartItemResponse, len(order.Cart)),
		TotalPrice: order.TotalPrice,
		ShippingAddress: ShippingAddressResponse{
			FullName:   order.ShippingAddress.FullName,
			Street:     order.ShippingAddress.Street,
			City:       order.ShippingAddress.City,
			PostalCode: order.ShippingAddress.PostalCode,
			Phone:      order.ShippingAddress.Phone,
		},
		OrderDate: order.OrderDate.Format(time.RFC3339),
		Status:    order.Status,
	}

	for i := range order.Cart {
		resp.Cart[i] = CartItemResponse{
			MedicineID: order.Cart[i].MedicineID,
			Name:       order.Cart[i].Name,
			Price:      order.Cart[i].Price,
			Quantity:   order.Cart[i].Quantity,
		}
	}
	return resp
}

func medicineToResponse(medicine domain.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:          medicine.ID.Hex(),
		Name:        medicine.Name,
		Description: medicine.Description,
		Category:    medicine.Category,
		Price:       medicine.Price,
		ImageURL:    medicine.ImageURL,
		Stock:       medicine.Stock,
	}
}
