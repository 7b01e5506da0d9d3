package web

import (
	"net/http"
	"time"

	"medistore/backend"
	"medistore/models"
	"medistore/navigation"
	"medistore/session"
	"medistore/utils"

	"github.com/julienschmidt/httprouter"
)

// dashBase builds the Base for a dashboard page: the sidebar always matches
// the resolved role, so an unknown role renders an empty sidebar.
func (h *Handler) dashBase(r *http.Request, title string) Base {
	b := h.base(r, title)
	b.Sidebar = navigation.RoutesForRole(b.User.Role)
	return b
}

// Dashboard is the shell. One request resolves one role, which selects one
// of the three parallel subtrees; guests and unknown roles land on the user
// subtree. The session middleware caches the resolution so the subtree's
// render reuses it.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Sessions.WithSession(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		user, _ := session.FromRequest(r)
		switch user.Role {
		case models.RoleAdmin:
			h.AdminOverview(w, r, ps)
		case models.RoleSeller:
			h.SellerOverview(w, r, ps)
		default:
			h.UserOverview(w, r, ps)
		}
	})(w, r, ps)
}

// guard redirects a request whose resolved role does not own the subtree.
// The resolution rides the request context into the guarded page.
func (h *Handler) guard(role models.Role, next httprouter.Handle) httprouter.Handle {
	return h.Sessions.WithSession(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		user, _ := session.FromRequest(r)
		if user.Role != role {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		next(w, r, ps)
	})
}

func (h *Handler) GuardAdmin(next httprouter.Handle) httprouter.Handle {
	return h.guard(models.RoleAdmin, next)
}

func (h *Handler) GuardSeller(next httprouter.Handle) httprouter.Handle {
	return h.guard(models.RoleSeller, next)
}

// ---------- user subtree ----------

func (h *Handler) UserOverview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	c := h.Cart.Me(ctx, backend.CookieHeader(r))

	data := struct {
		Base
		CartCount int
	}{Base: h.dashBase(r, "Dashboard"), CartCount: c.TotalItems}
	h.R.Render(w, "user_overview", data)
}

func (h *Handler) UserOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	list, err := h.Orders.My(ctx, backend.CookieHeader(r))

	data := struct {
		Base
		Orders []models.Order
	}{Base: h.dashBase(r, "My Orders"), Orders: list}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "user_orders", data)
}

func (h *Handler) UserOrderDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	o, err := h.Orders.ByID(ctx, backend.CookieHeader(r), ps.ByName("orderId"))

	data := struct {
		Base
		Order models.Order
	}{Base: h.dashBase(r, "Order Details"), Order: o}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "user_order_detail", data)
}

// ---------- admin subtree ----------

func (h *Handler) AdminOverview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	cookie := backend.CookieHeader(r)
	stats, err := h.Admin.OverviewStats(ctx, cookie)
	sales, salesErr := h.Admin.MonthlySales(ctx, cookie, time.Now().Year())

	data := struct {
		Base
		Stats models.OverviewStats
		Sales []models.MonthlySales
		Year  int
	}{Base: h.dashBase(r, "Admin Dashboard"), Stats: stats, Sales: sales, Year: time.Now().Year()}
	if err != nil {
		data.Error = err.Message
	} else if salesErr != nil {
		data.Error = salesErr.Message
	}
	h.R.Render(w, "admin_overview", data)
}

func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	page := utils.QueryInt(r, "page", 1)
	search := r.URL.Query().Get("search")
	users, pg, err := h.Admin.Users(ctx, backend.CookieHeader(r), page, 10, search)

	data := struct {
		Base
		Users      []models.SessionUser
		Pagination *models.Pagination
		Search     string
		Roles      []models.Role
	}{
		Base:       h.dashBase(r, "Manage Users"),
		Users:      users,
		Pagination: pg,
		Search:     search,
		Roles:      []models.Role{models.RoleAdmin, models.RoleSeller, models.RoleUser},
	}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "admin_users", data)
}

func (h *Handler) AdminProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	page := utils.QueryInt(r, "page", 1)
	q := r.URL.Query()
	list, pg, err := h.Admin.Products(ctx, backend.CookieHeader(r), page, 10, q.Get("search"), q.Get("status"))

	data := struct {
		Base
		Products   []models.Product
		Pagination *models.Pagination
		Search     string
		Status     string
	}{
		Base:       h.dashBase(r, "Manage Products"),
		Products:   list,
		Pagination: pg,
		Search:     q.Get("search"),
		Status:     q.Get("status"),
	}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "admin_products", data)
}

func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	page := utils.QueryInt(r, "page", 1)
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	list, pg, err := h.Admin.Orders(ctx, backend.CookieHeader(r), page, 10, search, status)

	data := struct {
		Base
		Orders     []models.Order
		Pagination *models.Pagination
		Search     string
		Status     string
		Statuses   []models.OrderStatus
	}{
		Base:       h.dashBase(r, "Manage Orders"),
		Orders:     list,
		Pagination: pg,
		Search:     search,
		Status:     status,
		Statuses:   models.OrderStatuses,
	}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "admin_orders", data)
}

func (h *Handler) AdminAds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "empty_state", h.dashBase(r, "Advertisements"))
}

func (h *Handler) AdminProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "profile", h.dashBase(r, "Profile"))
}

// ---------- seller subtree ----------

func (h *Handler) SellerOverview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	overview, err := h.Seller.Overview(ctx, backend.CookieHeader(r))

	data := struct {
		Base
		Overview models.DashboardOverview
	}{Base: h.dashBase(r, "Seller Dashboard"), Overview: overview}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "seller_overview", data)
}

func (h *Handler) SellerProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	page := utils.QueryInt(r, "page", 1)
	search := r.URL.Query().Get("search")
	list, pg, err := h.Seller.MyProducts(ctx, backend.CookieHeader(r), page, 10, search)

	data := struct {
		Base
		Products   []models.Product
		Pagination *models.Pagination
		Search     string
	}{Base: h.dashBase(r, "My Products"), Products: list, Pagination: pg, Search: search}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "seller_products", data)
}

func (h *Handler) SellerProductDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	p, err := h.Seller.ProductByID(ctx, backend.CookieHeader(r), ps.ByName("id"))

	data := struct {
		Base
		Product models.Product
	}{Base: h.dashBase(r, "Product"), Product: p}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "seller_product_detail", data)
}

type productFormData struct {
	Base
	Product models.Product
	Edit    bool
}

func (h *Handler) SellerCreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "seller_product_form", productFormData{Base: h.dashBase(r, "Add Product")})
}

func (h *Handler) SellerEditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	p, err := h.Seller.ProductByID(ctx, backend.CookieHeader(r), ps.ByName("id"))

	data := productFormData{Base: h.dashBase(r, "Edit Product"), Product: p, Edit: true}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "seller_product_form", data)
}

// productInputFromForm maps the product form. Optional numeric fields stay
// unset when blank, matching the create action's semantics.
func productInputFromForm(r *http.Request) models.ProductInput {
	in := models.ProductInput{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		Manufacturer: r.FormValue("manufacturer"),
		DosageForm:   r.FormValue("dosageForm"),
		Strength:     r.FormValue("strength"),
		PackSize:     r.FormValue("packSize"),
		Price:        utils.ParseFloat(r.FormValue("price")),
		Stock:        utils.ParseInt(r.FormValue("stock")),
		Image:        r.FormValue("image"),
		Images:       utils.SplitList(r.FormValue("images")),
	}
	if v := r.FormValue("discountPrice"); v != "" {
		d := utils.ParseFloat(v)
		in.DiscountPrice = &d
	}
	if v := r.FormValue("lowStockThreshold"); v != "" {
		in.LowStockThreshold = utils.ParseInt(v)
	}
	return in
}

// SellerSubmitProduct handles both the create and edit form posts.
func (h *Handler) SellerSubmitProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	in := productInputFromForm(r)
	cookie := backend.CookieHeader(r)

	id := ps.ByName("id")
	var err *backend.Error
	if id == "" {
		err = h.Seller.CreateProduct(ctx, cookie, in)
	} else {
		err = h.Seller.UpdateProduct(ctx, cookie, id, in)
	}

	if err != nil {
		data := productFormData{Base: h.dashBase(r, "Add Product"), Edit: id != ""}
		data.Error = err.Message
		data.Product = models.Product{
			ID:           id,
			Name:         in.Name,
			Description:  in.Description,
			Manufacturer: in.Manufacturer,
			DosageForm:   in.DosageForm,
			Strength:     in.Strength,
			PackSize:     in.PackSize,
			Price:        in.Price,
			Stock:        in.Stock,
			Image:        in.Image,
			Images:       in.Images,
		}
		h.R.Render(w, "seller_product_form", data)
		return
	}

	http.Redirect(w, r, "/seller-dashboard/my-products", http.StatusSeeOther)
}

func (h *Handler) SellerOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	page := utils.QueryInt(r, "page", 1)
	status := r.URL.Query().Get("status")
	list, pg, err := h.Seller.MyOrders(ctx, backend.CookieHeader(r), page, 20, status)

	data := struct {
		Base
		Orders     []models.Order
		Pagination *models.Pagination
		Status     string
		Statuses   []models.OrderStatus
	}{
		Base:       h.dashBase(r, "Orders"),
		Orders:     list,
		Pagination: pg,
		Status:     status,
		Statuses:   models.OrderStatuses,
	}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "seller_orders", data)
}

func (h *Handler) SellerOrderDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := pageCtx(r)
	defer cancel()

	o, err := h.Seller.OrderByID(ctx, backend.CookieHeader(r), ps.ByName("id"))

	data := struct {
		Base
		Order    models.Order
		Statuses []models.OrderStatus
	}{Base: h.dashBase(r, "Order Details"), Order: o, Statuses: models.OrderStatuses}
	if err != nil {
		data.Error = err.Message
	}
	h.R.Render(w, "seller_order_detail", data)
}

func (h *Handler) SellerPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "empty_state", h.dashBase(r, "Payments"))
}
