package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/shopspring/decimal"
)

type orderStore struct {
	*MYSQLStore
}

// Order returns an object implementing order interface
func (ms *MYSQLStore) Order() dependency.Order {
	return &orderStore{
		MYSQLStore: ms,
	}
}

// validateOrderInput checks the parts of a checkout that do not need the database.
func validateOrderInput(orderNew *entity.OrderNew) error {
	if len(orderNew.Items) == 0 {
		return gerr.EmptyOrder
	}
	for _, it := range orderNew.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return fmt.Errorf("item %+v: %w", it, gerr.BadRequest)
		}
	}
	return nil
}

// priceItems prices items from locked product rows. Inactive and unknown
// products reject the whole order.
func priceItems(ctx context.Context, rep dependency.Repository, items []entity.OrderItemNew) ([]entity.OrderItem, decimal.Decimal, error) {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	prds, err := QueryListNamed[entity.Product](ctx, rep.DB(), `
	SELECT * FROM products WHERE id IN (:ids) FOR UPDATE`, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("can't get products: %w", err)
	}
	byId := make(map[int]entity.Product, len(prds))
	for _, p := range prds {
		byId[p.ID] = p
	}

	subtotal := decimal.Zero
	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		p, ok := byId[it.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("product %d: %w", it.ProductID, gerr.ProductNotFound)
		}
		if !p.IsActive {
			return nil, decimal.Zero, fmt.Errorf("product %d: %w", it.ProductID, gerr.ProductInactive)
		}
		line := entity.OrderItem{
			ProductID:  p.ID,
			Quantity:   it.Quantity,
			UnitPrice:  p.Price,
			TotalPrice: p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
		subtotal = subtotal.Add(line.TotalPrice)
		lines = append(lines, line)
	}
	return lines, subtotal, nil
}

func insertOrder(ctx context.Context, rep dependency.Repository, order *entity.Order) (int, error) {
	query := `
	INSERT INTO orders
		(uuid, retailer_id, location_id, subtotal, total, status, delivery_date, promotion_code,
		 tracking_number, tracking_carrier, include_samples, notes, invoice_url, invoice_sent_at,
		 invoice_sent_count, created_at)
	VALUES
		(:uuid, :retailerId, :locationId, :subtotal, :total, :status, :deliveryDate, :promotionCode,
		 :trackingNumber, :trackingCarrier, :includeSamples, :notes, :invoiceUrl, :invoiceSentAt,
		 :invoiceSentCount, :createdAt)
	`
	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = rep.Now()
	}
	id, err := ExecNamedLastId(ctx, rep.DB(), query, map[string]any{
		"uuid":             order.UUID,
		"retailerId":       order.RetailerID,
		"locationId":       order.LocationID,
		"subtotal":         order.Subtotal,
		"total":            order.Total,
		"status":           order.Status,
		"deliveryDate":     order.DeliveryDate,
		"promotionCode":    order.PromotionCode,
		"trackingNumber":   order.TrackingNumber,
		"trackingCarrier":  order.TrackingCarrier,
		"includeSamples":   order.IncludeSamples,
		"notes":            order.Notes,
		"invoiceUrl":       order.InvoiceURL,
		"invoiceSentAt":    order.InvoiceSentAt,
		"invoiceSentCount": order.InvoiceSentCount,
		"createdAt":        createdAt,
	})
	if err != nil {
		return 0, fmt.Errorf("can't insert order: %w", err)
	}
	return id, nil
}

func insertOrderItems(ctx context.Context, rep dependency.Repository, items []entity.OrderItem, orderId int) error {
	if len(items) == 0 {
		return gerr.EmptyOrder
	}
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, map[string]any{
			"order_id":    orderId,
			"product_id":  item.ProductID,
			"quantity":    item.Quantity,
			"unit_price":  item.UnitPrice,
			"total_price": item.LineTotal(),
		})
	}
	return BulkInsert(ctx, rep.DB(), "order_items", rows)
}

func (os *orderStore) CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error) {
	if err := validateOrderInput(orderNew); err != nil {
		return nil, err
	}
	items := mergeItems(orderNew.Items)

	var orderId int
	err := os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if orderNew.LocationID != nil {
			if _, err := rep.Locations().GetLocation(ctx, orderNew.RetailerID, *orderNew.LocationID); err != nil {
				return err
			}
		}

		lines, subtotal, err := priceItems(ctx, rep, items)
		if err != nil {
			return err
		}

		if err := rep.Products().ReduceStock(ctx, items); err != nil {
			return err
		}

		orderId, err = insertOrder(ctx, rep, &entity.Order{
			UUID:           uuid.NewString(),
			RetailerID:     orderNew.RetailerID,
			LocationID:     orderNew.LocationID,
			Subtotal:       subtotal,
			Total:          subtotal,
			Status:         entity.OrderPending,
			DeliveryDate:   orderNew.DeliveryDate,
			PromotionCode:  orderNew.PromotionCode,
			IncludeSamples: orderNew.IncludeSamples,
			Notes:          orderNew.Notes,
		})
		if err != nil {
			return err
		}

		if err := insertOrderItems(ctx, rep, lines, orderId); err != nil {
			return fmt.Errorf("can't insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return os.GetOrderById(ctx, orderId)
}

func (os *orderStore) InsertImported(ctx context.Context, of *entity.OrderFull) (int, error) {
	var orderId int
	err := os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order := of.Order
		if order.UUID == "" {
			order.UUID = uuid.NewString()
		}
		if !order.Status.Valid() {
			return fmt.Errorf("order %s status %q: %w", order.UUID, order.Status, gerr.BadRequest)
		}
		var err error
		orderId, err = insertOrder(ctx, rep, &order)
		if err != nil {
			return err
		}
		if len(of.Items) == 0 {
			return nil
		}
		return insertOrderItems(ctx, rep, of.Items, orderId)
	})
	return orderId, err
}

// getOrdersItems fetches items for the given orders with their products attached.
func getOrdersItems(ctx context.Context, rep dependency.Repository, orderIds ...int) (map[int][]entity.OrderItem, error) {
	if len(orderIds) == 0 {
		return map[int][]entity.OrderItem{}, nil
	}

	ois, err := QueryListNamed[entity.OrderItem](ctx, rep.DB(), `
	SELECT id, order_id, product_id, quantity, unit_price, total_price
	FROM order_items
	WHERE order_id IN (:orderIds)
	ORDER BY id`, map[string]any{
		"orderIds": orderIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	productIds := make([]int, 0, len(ois))
	seen := make(map[int]struct{}, len(ois))
	for _, oi := range ois {
		if _, ok := seen[oi.ProductID]; ok {
			continue
		}
		seen[oi.ProductID] = struct{}{}
		productIds = append(productIds, oi.ProductID)
	}

	products := map[int]entity.Product{}
	if len(productIds) > 0 {
		prds, err := QueryListNamed[entity.Product](ctx, rep.DB(), `SELECT * FROM products WHERE id IN (:ids)`, map[string]any{
			"ids": productIds,
		})
		if err != nil {
			return nil, fmt.Errorf("can't get order products: %w", err)
		}
		for _, p := range prds {
			products[p.ID] = p
		}
	}

	itemsByOrder := make(map[int][]entity.OrderItem, len(orderIds))
	for _, oi := range ois {
		if p, ok := products[oi.ProductID]; ok {
			oi.Product = &p
		}
		itemsByOrder[oi.OrderID] = append(itemsByOrder[oi.OrderID], oi)
	}
	return itemsByOrder, nil
}

func getOrderById(ctx context.Context, rep dependency.Repository, orderId int, forUpdate bool) (*entity.Order, error) {
	query := `SELECT * FROM orders WHERE id = :orderId`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	order, err := QueryNamedOne[entity.Order](ctx, rep.DB(), query, map[string]any{
		"orderId": orderId,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.OrderNotFound
		}
		return nil, fmt.Errorf("can't get order: %w", err)
	}
	return &order, nil
}

func (os *orderStore) fullOrder(ctx context.Context, order *entity.Order) (*entity.OrderFull, error) {
	items, err := getOrdersItems(ctx, os, order.ID)
	if err != nil {
		return nil, err
	}
	return &entity.OrderFull{
		Order: *order,
		Items: items[order.ID],
	}, nil
}

func (os *orderStore) GetOrderById(ctx context.Context, id int) (*entity.OrderFull, error) {
	order, err := getOrderById(ctx, os, id, false)
	if err != nil {
		return nil, err
	}
	return os.fullOrder(ctx, order)
}

func (os *orderStore) GetOrderByUUID(ctx context.Context, uuid string) (*entity.OrderFull, error) {
	order, err := QueryNamedOne[entity.Order](ctx, os.DB(), `SELECT * FROM orders WHERE uuid = :uuid`, map[string]any{
		"uuid": uuid,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, gerr.OrderNotFound
		}
		return nil, fmt.Errorf("can't get order: %w", err)
	}
	return os.fullOrder(ctx, &order)
}

// orderFilterQuery builds the WHERE and LIMIT parts for f.
func orderFilterQuery(f entity.OrderFilter) (string, map[string]any) {
	conds := []string{"1 = 1"}
	params := map[string]any{}
	if f.Status != "" {
		conds = append(conds, "status = :status")
		params["status"] = f.Status
	}
	if f.RetailerID > 0 {
		conds = append(conds, "retailer_id = :retailerId")
		params["retailerId"] = f.RetailerID
	}
	if !f.From.IsZero() {
		conds = append(conds, "created_at >= :from")
		params["from"] = f.From
	}
	if !f.To.IsZero() {
		conds = append(conds, "created_at < :to")
		params["to"] = f.To
	}

	q := " WHERE " + strings.Join(conds, " AND ") + " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		q += " LIMIT :limit OFFSET :offset"
		params["limit"] = f.Limit
		params["offset"] = f.Offset
	}
	return q, params
}

func (os *orderStore) ListOrders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, error) {
	where, params := orderFilterQuery(f)
	orders, err := QueryListNamed[entity.Order](ctx, os.DB(), `SELECT * FROM orders`+where, params)
	if err != nil {
		return nil, fmt.Errorf("can't list orders: %w", err)
	}
	return orders, nil
}

func (os *orderStore) ListOrdersFull(ctx context.Context, f entity.OrderFilter) ([]entity.OrderFull, error) {
	orders, err := os.ListOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := getOrdersItems(ctx, os, ids...)
	if err != nil {
		return nil, err
	}

	full := make([]entity.OrderFull, 0, len(orders))
	for _, o := range orders {
		full = append(full, entity.OrderFull{
			Order: o,
			Items: items[o.ID],
		})
	}
	return full, nil
}

func updateOrderStatus(ctx context.Context, rep dependency.Repository, orderId int, status entity.OrderStatus) error {
	err := ExecNamed(ctx, rep.DB(), `UPDATE orders SET status = :status WHERE id = :orderId`, map[string]any{
		"orderId": orderId,
		"status":  status,
	})
	if err != nil {
		return fmt.Errorf("can't update order status: %w", err)
	}
	return nil
}

func (os *orderStore) UpdateStatus(ctx context.Context, id int, status entity.OrderStatus) (*entity.OrderFull, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, gerr.BadRequest)
	}

	err := os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order, err := getOrderById(ctx, rep, id, true)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(status) {
			return fmt.Errorf("%s -> %s: %w", order.Status, status, gerr.InvalidTransition)
		}
		if err := updateOrderStatus(ctx, rep, id, status); err != nil {
			return err
		}
		if status != entity.OrderCanceled {
			return nil
		}

		items, err := getOrdersItems(ctx, rep, id)
		if err != nil {
			return err
		}
		restore := make([]entity.OrderItemNew, 0, len(items[id]))
		for _, it := range items[id] {
			restore = append(restore, entity.OrderItemNew{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		return rep.Products().RestoreStock(ctx, restore)
	})
	if err != nil {
		return nil, err
	}
	return os.GetOrderById(ctx, id)
}

// SetTracking records carrier tracking. Orders that are not shipped yet are
// moved to shipped; delivered and canceled orders are rejected.
func (os *orderStore) SetTracking(ctx context.Context, id int, sh *entity.Shipment) (*entity.OrderFull, error) {
	err := os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order, err := getOrderById(ctx, rep, id, true)
		if err != nil {
			return err
		}
		if order.Status != entity.OrderShipped && !order.Status.CanTransitionTo(entity.OrderShipped) {
			return fmt.Errorf("tracking on %s order: %w", order.Status, gerr.InvalidTransition)
		}
		return ExecNamed(ctx, rep.DB(), `
		UPDATE orders SET
			tracking_number = :trackingNumber,
			tracking_carrier = :trackingCarrier,
			status = :status
		WHERE id = :orderId`, map[string]any{
			"orderId":         id,
			"trackingNumber":  sh.TrackingNumber,
			"trackingCarrier": sh.TrackingCarrier,
			"status":          entity.OrderShipped,
		})
	})
	if err != nil {
		return nil, err
	}
	return os.GetOrderById(ctx, id)
}

func (os *orderStore) SetInvoiceURL(ctx context.Context, id int, url string) error {
	n, err := execNamedAffected(ctx, os.DB(), `UPDATE orders SET invoice_url = :url WHERE id = :orderId`, map[string]any{
		"orderId": id,
		"url":     url,
	})
	if err != nil {
		return fmt.Errorf("can't set invoice url: %w", err)
	}
	if n == 0 {
		if _, err := getOrderById(ctx, os, id, false); err != nil {
			return err
		}
	}
	return nil
}

func (os *orderStore) MarkInvoiceSent(ctx context.Context, id int) error {
	n, err := execNamedAffected(ctx, os.DB(), `
	UPDATE orders SET
		invoice_sent_at = :sentAt,
		invoice_sent_count = invoice_sent_count + 1
	WHERE id = :orderId`, map[string]any{
		"orderId": id,
		"sentAt":  os.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't mark invoice sent: %w", err)
	}
	if n == 0 {
		return gerr.OrderNotFound
	}
	return nil
}
