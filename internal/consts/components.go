package consts

// Component names registered in the container.
const (
	COMP_DAO_PRODUCT    = "product_dao"
	COMP_DAO_INGREDIENT = "ingredient_dao"
	COMP_DAO_ORDER      = "order_dao"
	COMP_DAO_USER       = "user_dao"
	COMP_DAO_CONTACT    = "contact_dao"

	COMP_SVC_CATALOG    = "catalog_service"
	COMP_SVC_ORDER      = "order_service"
	COMP_SVC_INGREDIENT = "ingredient_service"
	COMP_SVC_USER       = "user_service"
	COMP_SVC_CONTACT    = "contact_service"
	COMP_SVC_REPORT     = "report_service"

	COMP_MIGRATE = "db_migrate"

	COMP_CTRL_PUBLIC = "public_ctrl"
	COMP_CTRL_ADMIN  = "admin_ctrl"
)

// Name of the mysql_gorm data source the service reads from.
const DATASOURCE = "evg"
