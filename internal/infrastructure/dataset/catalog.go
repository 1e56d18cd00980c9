package dataset

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-analyzer/internal/domain/entity"
)

// Catalog devuelve el catálogo fijo de 40 repuestos automotrices.
// El orden es significativo: el índice del repuesto participa en el perfil
// determinista de demanda de cada sucursal.
func Catalog() []entity.Part {
	return []entity.Part{
		part("SP-1001", "Spark Plug – Iridium", "Engine", "89.99"),
		part("SP-1002", "Spark Plug – Copper", "Engine", "42.50"),
		part("BP-2001", "Brake Pad Set – Front", "Brakes", "385.00"),
		part("BP-2002", "Brake Pad Set – Rear", "Brakes", "340.00"),
		part("BP-2003", "Brake Disc – Ventilated", "Brakes", "720.00"),
		part("BP-2004", "Brake Fluid DOT 4", "Brakes", "95.00"),
		part("EL-3001", "Alternator 12V 120A", "Electrical", "2450.00"),
		part("EL-3002", "Battery 60Ah", "Electrical", "1350.00"),
		part("EL-3003", "Starter Motor", "Electrical", "1890.00"),
		part("EL-3004", "Ignition Coil Pack", "Electrical", "560.00"),
		part("SU-4001", "Shock Absorber – Front", "Suspension", "890.00"),
		part("SU-4002", "Shock Absorber – Rear", "Suspension", "780.00"),
		part("SU-4003", "Control Arm – Lower", "Suspension", "1120.00"),
		part("SU-4004", "Tie Rod End", "Suspension", "320.00"),
		part("FI-5001", "Oil Filter", "Filters", "65.00"),
		part("FI-5002", "Air Filter", "Filters", "110.00"),
		part("FI-5003", "Fuel Filter", "Filters", "185.00"),
		part("FI-5004", "Cabin Filter", "Filters", "145.00"),
		part("FI-5005", "Transmission Filter Kit", "Filters", "290.00"),
		part("TR-6001", "Clutch Kit Complete", "Transmission", "3200.00"),
		part("TR-6002", "CV Joint – Outer", "Transmission", "680.00"),
		part("TR-6003", "Flywheel – Dual Mass", "Transmission", "4500.00"),
		part("TR-6004", "Gearbox Mount", "Transmission", "450.00"),
		part("EN-1003", "Timing Belt Kit", "Engine", "1250.00"),
		part("EN-1004", "Water Pump", "Engine", "680.00"),
		part("EN-1005", "Thermostat Housing", "Engine", "390.00"),
		part("EN-1006", "Valve Cover Gasket", "Engine", "220.00"),
		part("EN-1007", "Engine Mount", "Engine", "560.00"),
		part("BD-7001", "Side Mirror – Electric", "Body", "890.00"),
		part("BD-7002", "Headlight Assembly – LED", "Body", "2800.00"),
		part("BD-7003", "Tail Light Assembly", "Body", "1200.00"),
		part("BD-7004", "Wiper Blade Set", "Body", "165.00"),
		part("BD-7005", "Door Handle – Exterior", "Body", "340.00"),
		part("CL-8001", "Radiator – Aluminium", "Cooling", "1850.00"),
		part("CL-8002", "Radiator Fan Motor", "Cooling", "1100.00"),
		part("CL-8003", "Coolant Hose Kit", "Cooling", "280.00"),
		part("CL-8004", "Expansion Tank", "Cooling", "420.00"),
		part("CL-8005", "A/C Compressor", "Cooling", "3800.00"),
		part("EN-1008", "Piston Ring Set", "Engine", "750.00"),
		part("SU-4005", "Stabiliser Link", "Suspension", "210.00"),
	}
}

func part(sku, name, category, cost string) entity.Part {
	return entity.Part{
		SKU:      sku,
		Name:     name,
		Category: category,
		UnitCost: decimal.RequireFromString(cost),
	}
}
