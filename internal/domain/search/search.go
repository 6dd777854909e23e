// Package search filtra colecciones en memoria de facturas, clientes,
// productos y recibos por subcadena, sin ranking de relevancia: dentro de
// cada tipo se preserva el orden original de la colección.
package search

import (
	"strings"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

// Kind selector del tipo de registro a buscar.
type Kind string

const (
	KindAll       Kind = "all"
	KindInvoices  Kind = "invoices"
	KindCustomers Kind = "customers"
	KindProducts  Kind = "products"
	KindReceipts  Kind = "receipts"
)

// Valid informa si el selector es conocido.
func (k Kind) Valid() bool {
	switch k {
	case KindAll, KindInvoices, KindCustomers, KindProducts, KindReceipts:
		return true
	}
	return false
}

// Collections colecciones de solo-lectura sobre las que se busca.
// Son propiedad del caller; el agregador nunca las muta ni reordena.
type Collections struct {
	Invoices  []entity.Invoice
	Customers []entity.Customer
	Products  []entity.Product
	Receipts  []entity.Receipt
}

// Result subconjuntos coincidentes por tipo. En modo "all" los cuatro se
// llenan de forma independiente; el orden entre tipos lo da el caller
// componiendo facturas, clientes, productos, recibos.
type Result struct {
	Invoices  []entity.Invoice
	Customers []entity.Customer
	Products  []entity.Product
	Receipts  []entity.Receipt
}

// Total número combinado de coincidencias.
func (r Result) Total() int {
	return len(r.Invoices) + len(r.Customers) + len(r.Products) + len(r.Receipts)
}

// Search filtra las colecciones por contención de subcadena, insensible a
// mayúsculas, sobre los campos designados de cada tipo:
//
//	facturas:  número, nombre del cliente
//	clientes:  nombre, email
//	productos: nombre, SKU
//	recibos:   número, nombre del cliente
//
// La consulta se recorta antes de comparar; vacía o solo espacios significa
// "no se buscó" y devuelve cero coincidencias para todos los tipos.
// Un campo opcional vacío (ej. cliente sin email) simplemente no coincide.
func Search(query string, kind Kind, c Collections) Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Result{}
	}

	var res Result
	if kind == KindAll || kind == KindInvoices {
		for _, inv := range c.Invoices {
			if contains(inv.Number, q) || contains(inv.CustomerName, q) {
				res.Invoices = append(res.Invoices, inv)
			}
		}
	}
	if kind == KindAll || kind == KindCustomers {
		for _, cu := range c.Customers {
			if contains(cu.Name, q) || contains(cu.Email, q) {
				res.Customers = append(res.Customers, cu)
			}
		}
	}
	if kind == KindAll || kind == KindProducts {
		for _, p := range c.Products {
			if contains(p.Name, q) || contains(p.SKU, q) {
				res.Products = append(res.Products, p)
			}
		}
	}
	if kind == KindAll || kind == KindReceipts {
		for _, rc := range c.Receipts {
			if contains(rc.Number, q) || contains(rc.CustomerName, q) {
				res.Receipts = append(res.Receipts, rc)
			}
		}
	}
	return res
}

// contains subcadena insensible a mayúsculas; el needle ya viene en minúsculas.
func contains(field, lowered string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), lowered)
}
