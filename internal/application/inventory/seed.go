package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// SeedData devuelve el dataset inicial del bar. Los vencimientos y fechas de movimiento son
// relativos a now para que el panel muestre alertas coherentes tras cada reset.
func SeedData(now time.Time) entity.Snapshot {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		t := today.AddDate(0, 0, offset)
		return &t
	}
	dec := decimal.RequireFromString
	decp := func(s string) *decimal.Decimal {
		d := dec(s)
		return &d
	}
	intp := func(v int) *int { return &v }

	suppliers := []entity.Supplier{
		{
			ID: "s-001", Name: "Distribuidora Paulista de Bebidas", CNPJ: "12.345.678/0001-90",
			Email: "vendas@dpbebidas.com.br", Phone: "(11) 3456-7890",
			Address: "Rua das Indústrias, 450 - São Paulo/SP", PaymentTerms: "30 dias", LeadTimeDays: intp(3),
		},
		{
			ID: "s-002", Name: "Hortifruti Vila Madalena", CPF: "123.456.789-09",
			Email: "contato@hortivila.com.br", Phone: "(11) 98765-4321",
			PaymentTerms: "à vista", LeadTimeDays: intp(1),
		},
		{
			ID: "s-003", Name: "Cervejaria Artesanal Serra Azul", CNPJ: "98.765.432/0001-10",
			Email: "pedidos@serraazul.com.br", Phone: "(19) 3222-1100",
			Address: "Estrada Municipal, km 12 - Campinas/SP", PaymentTerms: "28 dias", LeadTimeDays: intp(5),
		},
	}

	products := []entity.Product{
		{
			ID: "p-001", Name: "Cachaça Artesanal Ouro", SKU: "CACH-001", EAN: "7891234560011",
			Category: "Destilados", SupplierID: "s-001", Unit: entity.UnitBottle, Volume: 700,
			ABV: dec("40"), Cost: dec("38.50"), Price: dec("89.90"), Stock: dec("14"), MinStock: dec("6"),
			MaxStock: decp("30"), Location: "Bar - Prateleira A",
		},
		{
			ID: "p-002", Name: "Cerveja Pilsen Lata", SKU: "CERV-001", EAN: "7891234560028",
			Category: "Cervejas", SupplierID: "s-001", Unit: entity.UnitCan, Volume: 350,
			ABV: dec("4.5"), Cost: dec("3.20"), Price: dec("8.00"), Stock: dec("96"), MinStock: dec("48"),
			MaxStock: decp("240"), Location: "Câmara Fria", ExpiryDate: day(60),
		},
		{
			ID: "p-003", Name: "IPA Serra Azul", SKU: "CERV-002",
			Category: "Cervejas", SupplierID: "s-003", Unit: entity.UnitBottle, Volume: 500,
			ABV: dec("6.2"), Cost: dec("14.90"), Price: dec("29.00"), Stock: dec("8"), MinStock: dec("12"),
			Location: "Câmara Fria", ExpiryDate: day(5),
		},
		{
			ID: "p-004", Name: "Limão Tahiti", SKU: "HORT-001",
			Category: "Hortifruti", SupplierID: "s-002", Unit: entity.UnitKilo,
			Cost: dec("6.50"), Price: dec("0"), Stock: dec("4.5"), MinStock: dec("3"),
			Location: "Cozinha - Geladeira", ExpiryDate: day(3),
		},
		{
			ID: "p-005", Name: "Vodka Premium", SKU: "DEST-002", EAN: "7891234560035",
			Category: "Destilados", SupplierID: "s-001", Unit: entity.UnitBottle, Volume: 1000,
			ABV: dec("40"), Cost: dec("62.00"), Price: dec("149.00"), Stock: dec("2"), MinStock: dec("4"),
			MaxStock: decp("12"), Location: "Bar - Prateleira B",
		},
		{
			ID: "p-006", Name: "Água com Gás", SKU: "NALC-001", EAN: "7891234560042",
			Category: "Não alcoólicos", SupplierID: "s-001", Unit: entity.UnitBale, Volume: 500,
			Cost: dec("18.00"), Price: dec("6.00"), Stock: dec("10"), MinStock: dec("5"),
			Location: "Estoque Seco", ExpiryDate: day(180),
		},
		{
			ID: "p-007", Name: "Chope Serra Azul Barril", SKU: "CERV-003",
			Category: "Cervejas", SupplierID: "s-003", Unit: entity.UnitLiter, Volume: 30000,
			ABV: dec("5"), Cost: dec("420.00"), Price: dec("14.00"), Stock: dec("3"), MinStock: dec("2"),
			Location: "Câmara Fria", ExpiryDate: day(14),
		},
		{
			ID: "p-008", Name: "Hortelã", SKU: "HORT-002",
			Category: "Hortifruti", SupplierID: "s-002", Unit: entity.UnitPiece,
			Cost: dec("2.50"), Price: dec("0"), Stock: dec("6"), MinStock: dec("6"),
			Location: "Cozinha - Geladeira", ExpiryDate: day(1),
		},
	}

	employees := []entity.Employee{
		{
			ID: "e-001", Name: "Carlos Carneiro", CPF: "111.222.333-44", Phone: "(11) 99999-0001",
			Email: "carlos@bardocarneiro.com.br", Role: entity.RoleManager, AdmissionDate: *day(-1460),
			Shift: entity.ShiftNight, BaseSalary: decp("6500.00"), CanAdjustStock: true, Active: true,
		},
		{
			ID: "e-002", Name: "Juliana Souza", CPF: "222.333.444-55", Phone: "(11) 99999-0002",
			Email: "juliana@bardocarneiro.com.br", Role: entity.RoleBartender, AdmissionDate: *day(-540),
			Shift: entity.ShiftNight, BaseSalary: decp("2800.00"), CanAdjustStock: true, Active: true,
		},
		{
			ID: "e-003", Name: "Rafael Lima", CPF: "333.444.555-66", Phone: "(11) 99999-0003",
			Email: "rafael@bardocarneiro.com.br", Role: entity.RoleWaiter, AdmissionDate: *day(-200),
			Shift: entity.ShiftAfternoon, BaseSalary: decp("2100.00"), Active: true,
		},
		{
			ID: "e-004", Name: "Marina Alves", CPF: "444.555.666-77", Phone: "(11) 99999-0004",
			Email: "marina@bardocarneiro.com.br", Role: entity.RoleKitchen, AdmissionDate: *day(-90),
			Notes: "Responsável pelo pré-preparo de drinks", Shift: entity.ShiftMorning,
			CanAdjustStock: true, Active: true,
		},
		{
			ID: "e-005", Name: "Pedro Santos", CPF: "555.666.777-88", Phone: "(11) 99999-0005",
			Email: "pedro@bardocarneiro.com.br", Role: entity.RoleCashier, AdmissionDate: *day(-400),
			Notes: "Afastado", Shift: entity.ShiftAfternoon,
		},
	}

	moves := []entity.StockMove{
		{
			ID: "m-001", ProductID: "p-002", EmployeeID: "e-001", Type: entity.DirectionIn,
			Quantity: dec("120"), UnitCost: decp("3.20"), Reason: entity.ReasonPurchase, Date: *day(-6),
		},
		{
			ID: "m-002", ProductID: "p-002", EmployeeID: "e-002", Type: entity.DirectionOut,
			Quantity: dec("24"), UnitPrice: decp("8.00"), Reason: entity.ReasonSale, Date: *day(-4),
		},
		{
			ID: "m-003", ProductID: "p-001", EmployeeID: "e-002", Type: entity.DirectionOut,
			Quantity: dec("2"), UnitPrice: decp("89.90"), Reason: entity.ReasonSale, Notes: "Doses da noite",
			Date: *day(-3),
		},
		{
			ID: "m-004", ProductID: "p-004", EmployeeID: "e-004", Type: entity.DirectionOut,
			Quantity: dec("1.5"), Reason: entity.ReasonConsumption, Notes: "Caipirinhas", Date: *day(-2),
		},
		{
			ID: "m-005", ProductID: "p-005", EmployeeID: "e-001", Type: entity.DirectionOut,
			Quantity: dec("1"), Reason: entity.ReasonLoss, Notes: "Garrafa quebrada", Date: *day(-1),
		},
		{
			ID: "m-006", ProductID: "p-003", EmployeeID: "e-001", Type: entity.DirectionIn,
			Quantity: dec("12"), UnitCost: decp("14.90"), Reason: entity.ReasonPurchase, Date: *day(-1),
		},
	}
	for i := range moves {
		moves[i].CreatedAt = moves[i].Date
	}

	for i := range suppliers {
		suppliers[i].CreatedAt, suppliers[i].UpdatedAt = now, now
	}
	for i := range products {
		products[i].CreatedAt, products[i].UpdatedAt = now, now
	}
	for i := range employees {
		employees[i].CreatedAt, employees[i].UpdatedAt = now, now
	}

	return entity.Snapshot{
		Products:  products,
		Suppliers: suppliers,
		Employees: employees,
		Moves:     moves,
		Settings: entity.Settings{
			BrandName:    "BAR DO CARNEIRO",
			Theme:        entity.ThemeDark,
			PrimaryColor: "#B45309",
			AlertDays:    7,
			Currency:     "BRL",
			Timezone:     "America/Sao_Paulo",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
