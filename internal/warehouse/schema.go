//-------------------------------------------------------------------------
//
// ShopSmart ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

// DDL for the destination tables. Each table is dropped and recreated on
// every run; the warehouse is replaced wholesale, never migrated.
const createCustomerSQL = `
CREATE TABLE customer (
    customer_id TEXT NOT NULL
)`

const createProductSQL = `
CREATE TABLE product (
    product_id   TEXT NOT NULL,
    product_name TEXT,
    category     TEXT,
    price        DOUBLE PRECISION
)`

const createTimeSQL = `
CREATE TABLE time (
    date    DATE NOT NULL,
    year    INTEGER NOT NULL,
    quarter TEXT NOT NULL,
    month   INTEGER NOT NULL,
    day     INTEGER NOT NULL
)`

const createSaleSQL = `
CREATE TABLE sale (
    date           DATE NOT NULL,
    transaction_id TEXT NOT NULL,
    customer_id    TEXT NOT NULL,
    product_id     TEXT NOT NULL,
    quantity       BIGINT NOT NULL,
    price          DOUBLE PRECISION,
    total_sales    DOUBLE PRECISION
)`
