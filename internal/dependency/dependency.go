package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Products interface {
		// AddProduct inserts a product and returns its id.
		AddProduct(ctx context.Context, prd *entity.ProductInsert) (int, error)
		UpdateProduct(ctx context.Context, id int, prd *entity.ProductInsert) error
		GetProductById(ctx context.Context, id int) (*entity.Product, error)
		// ListProducts returns the catalog, optionally only active products.
		ListProducts(ctx context.Context, activeOnly bool) ([]entity.Product, error)
		// DeactivateProduct hides a product from the retailer catalog. Orders keep referencing it.
		DeactivateProduct(ctx context.Context, id int) error
		UpdateStock(ctx context.Context, id int, quantity int) error
		SetProductImage(ctx context.Context, id int, img *entity.ProductImage) error
		// ReduceStock decrements stock for each item and fails if any would go negative.
		ReduceStock(ctx context.Context, items []entity.OrderItemNew) error
		RestoreStock(ctx context.Context, items []entity.OrderItemNew) error
	}

	Order interface {
		// CreateOrder prices the items from the catalog, checks and decrements
		// stock and inserts the order in one transaction.
		CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error)
		GetOrderById(ctx context.Context, id int) (*entity.OrderFull, error)
		GetOrderByUUID(ctx context.Context, uuid string) (*entity.OrderFull, error)
		ListOrders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, error)
		// ListOrdersFull returns orders with items and joined products.
		ListOrdersFull(ctx context.Context, f entity.OrderFilter) ([]entity.OrderFull, error)
		// UpdateStatus moves an order along the status table. Canceling restores stock.
		UpdateStatus(ctx context.Context, id int, status entity.OrderStatus) (*entity.OrderFull, error)
		SetTracking(ctx context.Context, id int, sh *entity.Shipment) (*entity.OrderFull, error)
		SetInvoiceURL(ctx context.Context, id int, url string) error
		MarkInvoiceSent(ctx context.Context, id int) error
		// InsertImported writes an order exactly as given, keeping its totals and status.
		InsertImported(ctx context.Context, of *entity.OrderFull) (int, error)
	}

	Retailers interface {
		AddRetailer(ctx context.Context, r *entity.RetailerInsert, pwHash string) (*entity.Retailer, error)
		GetRetailerById(ctx context.Context, id int) (*entity.Retailer, error)
		GetRetailerByEmail(ctx context.Context, email string) (*entity.Retailer, error)
		ListRetailers(ctx context.Context) ([]entity.Retailer, error)
		UpdateRetailer(ctx context.Context, id int, r *entity.RetailerInsert) error
		SetStripeCustomerId(ctx context.Context, id int, customerId string) error
		SetPasswordHash(ctx context.Context, id int, pwHash string) error
		SetRetailerInvoiceSent(ctx context.Context, id int, url string) error
	}

	Locations interface {
		ListLocations(ctx context.Context, retailerId int) ([]entity.RetailerLocation, error)
		GetLocation(ctx context.Context, retailerId, id int) (*entity.RetailerLocation, error)
		AddLocation(ctx context.Context, retailerId int, l *entity.RetailerLocationInsert) (int, error)
		UpdateLocation(ctx context.Context, retailerId, id int, l *entity.RetailerLocationInsert) error
		DeleteLocation(ctx context.Context, retailerId, id int) error
		// SetDefault leaves exactly one default location for the retailer.
		SetDefault(ctx context.Context, retailerId, id int) error
	}

	Content interface {
		AddAnnouncement(ctx context.Context, a *entity.AnnouncementInsert) (int, error)
		UpdateAnnouncement(ctx context.Context, id int, a *entity.AnnouncementInsert) error
		DeleteAnnouncement(ctx context.Context, id int) error
		ListAnnouncements(ctx context.Context, activeOnly bool) ([]entity.Announcement, error)

		AddResource(ctx context.Context, r *entity.ResourceInsert) (int, error)
		UpdateResource(ctx context.Context, id int, r *entity.ResourceInsert) error
		GetResourceById(ctx context.Context, id int) (*entity.Resource, error)
		DeleteResource(ctx context.Context, id int) error
		ListResources(ctx context.Context) ([]entity.Resource, error)
	}

	Samples interface {
		AddSampleRequest(ctx context.Context, s *entity.SampleRequestInsert) (int, error)
		ListSampleRequests(ctx context.Context, includeHandled bool) ([]entity.SampleRequest, error)
		MarkHandled(ctx context.Context, id int) error
	}

	Messages interface {
		AddMessage(ctx context.Context, retailerId int, sender entity.MessageSender, body string) (*entity.Message, error)
		// ListMessages returns a retailer thread, oldest first.
		ListMessages(ctx context.Context, retailerId int) ([]entity.Message, error)
		// ListLatestMessages returns the newest messages across all retailers.
		ListLatestMessages(ctx context.Context, limit int) ([]entity.Message, error)
		// MarkRead marks the messages written by sender in a thread as read.
		MarkRead(ctx context.Context, retailerId int, sender entity.MessageSender) error
	}

	Mail interface {
		AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error)
		// ListUnsent returns the oldest unsent rows that failed fewer than
		// maxAttempts times.
		ListUnsent(ctx context.Context, maxAttempts, limit int) ([]entity.SendEmailRequest, error)
		MarkSent(ctx context.Context, id int) error
		MarkFailed(ctx context.Context, id int, errMsg string) error
	}

	Admin interface {
		AddAdmin(ctx context.Context, un, pwHash string) error
		DeleteAdmin(ctx context.Context, username string) error
		ChangePassword(ctx context.Context, un, newHash string) error
		PasswordHashByUsername(ctx context.Context, un string) (string, error)
		GetAdminByUsername(ctx context.Context, username string) (*entity.Admin, error)
	}

	Repository interface {
		Products() Products
		Order() Order
		Retailers() Retailers
		Locations() Locations
		Content() Content
		Samples() Samples
		Messages() Messages
		Admin() Admin
		Mail() Mail
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	FileStore interface {
		// UploadInvoice stores a PDF and returns its public URL.
		UploadInvoice(ctx context.Context, raw []byte, orderUUID string) (string, error)
		UploadResource(ctx context.Context, raw []byte, name, contentType string) (string, error)
		// UploadProductImage converts a base64 jpeg or png to webp and stores the
		// full size image and a thumbnail.
		UploadProductImage(ctx context.Context, rawB64Image string, productId int) (*entity.ProductImage, error)
		Delete(ctx context.Context, url string) error
	}

	Mailer interface {
		SendWelcome(ctx context.Context, rep Repository, to string, d *dto.Welcome) error
		SendOrderPlaced(ctx context.Context, rep Repository, to string, d *dto.OrderPlaced) error
		SendOrderReceived(ctx context.Context, rep Repository, d *dto.OrderPlaced) error
		SendOrderShipped(ctx context.Context, rep Repository, to string, d *dto.OrderShipped) error
		SendOrderCanceled(ctx context.Context, rep Repository, to string, d *dto.OrderCanceled) error
		SendInvoice(ctx context.Context, rep Repository, to string, d *dto.InvoiceMail) error
		SendMessageReceived(ctx context.Context, rep Repository, d *dto.MessageMail) error
		SendMessageReply(ctx context.Context, rep Repository, to string, d *dto.MessageMail) error
		SendSampleRequest(ctx context.Context, rep Repository, d *dto.SampleRequestMail) error
		SendAtRiskDigest(ctx context.Context, rep Repository, d *dto.AtRiskDigest) error
		Start(ctx context.Context) error
		Stop() error
	}

	Sender interface {
		SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
	}

	Invoicer interface {
		// CreateInvoice issues a hosted Stripe invoice for the order and returns its URL.
		CreateInvoice(ctx context.Context, retailer *entity.Retailer, order *entity.OrderFull) (*entity.InvoiceResult, error)
	}

	Catalog interface {
		Products() []entity.Product
		Product(id int) (entity.Product, bool)
		Refresh(ctx context.Context) error
	}
)
