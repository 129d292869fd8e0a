package model

// All returns every persisted model in migration order.
func All() []any {
	return []any{
		&CompanyModel{},
		&UserModel{},
		&RefreshTokenModel{},
		&PasswordResetTokenModel{},
		&PersonModel{},
		&ProductModel{},
		&CategoryModel{},
		&LedgerEntryModel{},
		&SalesOrderModel{},
		&SalesOrderItemModel{},
		&ReminderModel{},
		&NotificationModel{},
		&EmailQueueModel{},
	}
}
