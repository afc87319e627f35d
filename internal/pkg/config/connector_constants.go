package config

// AzureStorageProvider stores clothing photos in an Azure Blob Storage container
const AzureStorageProvider = "azure"

// LocalStorageProvider stores clothing photos on the local filesystem
const LocalStorageProvider = "local"
