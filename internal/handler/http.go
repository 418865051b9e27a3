package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderGenerator interface {
	Order() entities.Order
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderSaver
	cache     OrderCache
	generator OrderGenerator
}

func NewHTTPHandler(logger *slog.Logger, svc OrderSaver, cache OrderCache, generator OrderGenerator) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		svc:       svc,
		cache:     cache,
		generator: generator,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/order/{order_uid}", h.GetOrderByID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.CreateOrder)
		r.Post("/send-test-order", h.SendTestOrder)
	})
}

// Health
// @Summary      Проверка доступности
// @Tags         system
// @Success      200  {object}  utils.StatusResponse
// @Router       /health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, utils.StatusResponse{Status: "ok"}, http.StatusOK)
}

// GetOrderByID возвращает заказ из кеша.
// @Summary      Получить заказ по UID
// @Description  Возвращает информацию о заказе по его уникальному идентификатору
// @Tags         orders
// @Param        order_uid   path      string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /order/{order_uid} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()

	start := time.Now()
	status := http.StatusOK
	defer func() {
		orderRequestTotal.WithLabelValues(strconv.Itoa(status)).Inc()
		orderRequestDuration.Observe(time.Since(start).Seconds())
	}()

	orderUID := chi.URLParam(r, "order_uid")

	if err := h.validate.Var(orderUID, "required"); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	order, ok := h.cache.Get(orderUID)
	if !ok {
		status = http.StatusNotFound
		utils.WriteError(w, "order not found", status)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), status)
}

// ListOrders возвращает все заказы из кеша.
// @Summary      Список заказов
// @Tags         orders
// @Success      200  {array}   Order
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.cache.GetAll()

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateOrder сохраняет заказ в обход очереди.
// @Summary      Создать заказ
// @Description  Сохраняет заказ в базу и кеш, минуя брокер. Для тестирования.
// @Tags         orders
// @Accept       json
// @Param        order  body      Order  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := utils.DecodeBody(r, &raw); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	body, err := DecodeOrder(raw)
	if errors.Is(err, ErrMissingField) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.save(w, r, OrderJSONToEntity(body))
}

// SendTestOrder генерирует и сохраняет случайный заказ.
// @Summary      Создать случайный заказ
// @Tags         orders
// @Success      201  {object}  Order
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/send-test-order [post]
func (h *HTTPHandler) SendTestOrder(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, h.generator.Order())
}

func (h *HTTPHandler) save(w http.ResponseWriter, r *http.Request, order entities.Order) {
	ctx := r.Context()

	err := h.svc.SaveOrder(ctx, order)
	if errors.Is(err, entities.ErrInvalidOrder) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save order", slog.Any("error", err), slog.String("order_uid", order.OrderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.cache.Set(order)
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}
